package models

import "time"

type TimerMode string

const (
	TimerModeWork  TimerMode = "work"
	TimerModeBreak TimerMode = "break"
)

// Timer is the persisted Pomodoro countdown state. While running, the time left
// is Remaining minus the time elapsed since StartedAt.
type Timer struct {
	Mode      TimerMode  `json:"mode" yaml:"mode"`
	Remaining int        `json:"remaining_seconds" yaml:"remaining_seconds"`
	Running   bool       `json:"running" yaml:"running"`
	StartedAt *time.Time `json:"started_at,omitempty" yaml:"started_at,omitempty"`
}

// Label returns the human-readable session name.
func (t *Timer) Label() string {
	if t.Mode == TimerModeBreak {
		return "Break Time"
	}
	return "Work Session"
}
