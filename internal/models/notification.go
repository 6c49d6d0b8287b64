package models

type NotificationKind string

const (
	NotificationHabitCompleted NotificationKind = "habit_completed"
	NotificationReminderDue    NotificationKind = "reminder_due"
	NotificationTimerFinished  NotificationKind = "timer_finished"
)

// Notification is structured notification data produced by the board logic.
// Presentation strings are derived from it by the notifier.
type Notification struct {
	Kind       NotificationKind `json:"kind" yaml:"kind"`
	HabitID    string           `json:"habit_id,omitempty" yaml:"habit_id,omitempty"`
	ReminderID string           `json:"reminder_id,omitempty" yaml:"reminder_id,omitempty"`
	Streak     int              `json:"streak,omitempty" yaml:"streak,omitempty"`
	Text       string           `json:"text,omitempty" yaml:"text,omitempty"`
}
