// Package pomodoro implements the work/break countdown timer. The timer is
// persisted between invocations, so a running timer stores when it started
// and the time left at that moment instead of ticking in memory.
package pomodoro

import (
	"time"

	"github.com/julianstephens/dashlit/internal/models"
)

const (
	workFinishedText  = "Work session complete! Take a break."
	breakFinishedText = "Break time is over! Ready for work?"
)

// Durations holds the full length of each session type.
type Durations struct {
	Work  time.Duration
	Break time.Duration
}

// DurationsFromSettings reads session lengths from user settings.
func DurationsFromSettings(s models.Settings) Durations {
	models.ApplyDefaultSettings(&s)
	return Durations{
		Work:  time.Duration(s.WorkMinutes) * time.Minute,
		Break: time.Duration(s.BreakMinutes) * time.Minute,
	}
}

func (d Durations) full(mode models.TimerMode) int {
	if mode == models.TimerModeBreak {
		return int(d.Break / time.Second)
	}
	return int(d.Work / time.Second)
}

// New returns a paused timer at the start of a work session.
func New(d Durations) models.Timer {
	return models.Timer{Mode: models.TimerModeWork, Remaining: d.full(models.TimerModeWork)}
}

// Left returns the seconds left on t at now, never below zero.
func Left(t models.Timer, now time.Time) int {
	left := t.Remaining
	if t.Running && t.StartedAt != nil {
		left -= int(now.Sub(*t.StartedAt) / time.Second)
	}
	if left < 0 {
		return 0
	}
	return left
}

// Start runs a paused timer. It reports false when the timer was already running.
func Start(t models.Timer, now time.Time) (models.Timer, bool) {
	if t.Running {
		return t, false
	}
	started := now
	t.Running = true
	t.StartedAt = &started
	return t, true
}

// Pause stops a running timer, folding elapsed time into Remaining. It reports
// false when the timer was not running.
func Pause(t models.Timer, now time.Time) (models.Timer, bool) {
	if !t.Running {
		return t, false
	}
	t.Remaining = Left(t, now)
	t.Running = false
	t.StartedAt = nil
	return t, true
}

// Reset pauses the timer and restores the full length of the current session.
func Reset(t models.Timer, d Durations) models.Timer {
	t.Running = false
	t.StartedAt = nil
	t.Remaining = d.full(t.Mode)
	return t
}

// Advance finishes a running session whose time is up: the timer pauses,
// switches to the other session type at full length and a timer_finished
// notification is returned. Otherwise t is returned unchanged with no notification.
func Advance(t models.Timer, now time.Time, d Durations) (models.Timer, *models.Notification) {
	if !t.Running || Left(t, now) > 0 {
		return t, nil
	}

	text := workFinishedText
	next := models.TimerModeBreak
	if t.Mode == models.TimerModeBreak {
		text = breakFinishedText
		next = models.TimerModeWork
	}

	t.Mode = next
	t = Reset(t, d)
	return t, &models.Notification{Kind: models.NotificationTimerFinished, Text: text}
}
