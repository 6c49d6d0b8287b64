package models

import "time"

// Habit represents a daily practice whose consecutive completions form a streak
type Habit struct {
	ID                string    `json:"id" yaml:"id"`
	Name              string    `json:"name" yaml:"name"`
	Streak            int       `json:"streak" yaml:"streak"`
	LastCompletedDate string    `json:"last_completed_date,omitempty" yaml:"last_completed_date,omitempty"` // YYYY-MM-DD, empty when absent
	CreatedAt         time.Time `json:"created_at" yaml:"created_at"`

	// CompletedToday is derived from LastCompletedDate by habits.RefreshDailyState
	// and never persisted.
	CompletedToday bool `json:"-" yaml:"-"`
}

// HasCompletion reports whether the habit has a recorded completion day.
func (h *Habit) HasCompletion() bool {
	return h.LastCompletedDate != ""
}
