// Package notifier delivers board notifications to the user: the terminal and,
// when it is running, the dashlit tray application.
package notifier

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/julianstephens/dashlit/internal/logger"
	"github.com/julianstephens/dashlit/internal/models"
)

// Sink receives rendered notifications.
type Sink interface {
	Send(title, body string) error
}

// Format turns structured notification data into a title and body.
func Format(n models.Notification) (string, string) {
	switch n.Kind {
	case models.NotificationHabitCompleted:
		return "Habit Completed!", fmt.Sprintf("Great job! Your streak is now %d days! 🔥", n.Streak)
	case models.NotificationReminderDue:
		return "Reminder", n.Text
	case models.NotificationTimerFinished:
		return "Pomodoro Timer", n.Text
	default:
		return "dashlit", n.Text
	}
}

// Deliver formats each notification and hands it to sink. Delivery errors are
// logged and joined; a failing notification never blocks the rest.
func Deliver(sink Sink, notifications []models.Notification) error {
	if sink == nil {
		return nil
	}
	var errs []error
	for _, n := range notifications {
		title, body := Format(n)
		if err := sink.Send(title, body); err != nil {
			logger.Warn("Notification delivery failed", "kind", n.Kind, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ConsoleSink prints notifications to a writer, ringing the terminal bell when
// Bell is set.
type ConsoleSink struct {
	W    io.Writer
	Bell bool
}

func (c *ConsoleSink) Send(title, body string) error {
	var b strings.Builder
	if c.Bell {
		b.WriteString("\a")
	}
	b.WriteString("🔔 ")
	b.WriteString(title)
	if body != "" {
		b.WriteString(": ")
		b.WriteString(body)
	}
	b.WriteString("\n")
	_, err := io.WriteString(c.W, b.String())
	return err
}

// MultiSink fans a notification out to several sinks.
type MultiSink []Sink

func (m MultiSink) Send(title, body string) error {
	var errs []error
	for _, s := range m {
		if err := s.Send(title, body); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// BestEffort wraps a sink whose failures should only be logged at debug level,
// such as the tray sink when no tray app is running.
type BestEffort struct {
	Sink Sink
}

func (b BestEffort) Send(title, body string) error {
	if err := b.Sink.Send(title, body); err != nil {
		logger.Debug("Optional notification sink unavailable", "error", err)
	}
	return nil
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Send(string, string) error { return nil }
