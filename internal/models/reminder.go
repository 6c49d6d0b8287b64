package models

import "time"

// Reminder is a one-shot, time-based notification.
type Reminder struct {
	ID        string    `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	DueAt     time.Time `json:"due_at" yaml:"due_at"`
	Triggered bool      `json:"triggered" yaml:"triggered"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// IsDue reports whether the reminder's time has reached or passed now.
func (r *Reminder) IsDue(now time.Time) bool {
	return !r.DueAt.After(now)
}
