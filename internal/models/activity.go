package models

import "time"

type ActivityCategory string

const (
	CategoryTodo     ActivityCategory = "todo"
	CategoryHabit    ActivityCategory = "habit"
	CategoryReminder ActivityCategory = "reminder"
	CategoryNote     ActivityCategory = "note"
	CategoryTimer    ActivityCategory = "timer"
	CategorySystem   ActivityCategory = "system"
)

// ActivityEntry is one line of the local activity log.
type ActivityEntry struct {
	ID        string           `json:"id" yaml:"id"`
	Timestamp time.Time        `json:"timestamp" yaml:"timestamp"`
	Action    string           `json:"action" yaml:"action"`
	Category  ActivityCategory `json:"category" yaml:"category"`
	Details   string           `json:"details,omitempty" yaml:"details,omitempty"`
}
