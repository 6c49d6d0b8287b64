// Package reminders implements the reminder collection and the scheduler that
// turns due reminders into notifications exactly once.
package reminders

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/models"
)

// Add appends a new untriggered reminder. dueAt must be strictly after now.
func Add(reminders []models.Reminder, text string, dueAt, now time.Time) ([]models.Reminder, models.Reminder, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return reminders, models.Reminder{}, apperrors.NewValidation("text", "reminder text cannot be empty")
	}
	if !dueAt.After(now) {
		return reminders, models.Reminder{}, apperrors.NewValidation("due time", "please select a future time for your reminder")
	}

	r := models.Reminder{
		ID:        uuid.New().String(),
		Text:      text,
		DueAt:     dueAt,
		CreatedAt: now,
	}

	out := make([]models.Reminder, 0, len(reminders)+1)
	out = append(out, reminders...)
	out = append(out, r)
	return out, r, nil
}

// Poll fires every untriggered reminder whose time has come and returns the
// updated collection together with the reminders fired by this call.
//
// A reminder is kept while it is still in the future or has not yet fired.
// Retention is judged on the state the reminder entered the poll with, so a
// reminder fired now survives until the next poll. The result is ordered by
// DueAt; equal times keep insertion order.
func Poll(reminders []models.Reminder, now time.Time) (updated []models.Reminder, fired []models.Reminder) {
	updated = make([]models.Reminder, 0, len(reminders))
	for _, r := range reminders {
		if r.DueAt.After(now) || !r.Triggered {
			if !r.Triggered && r.IsDue(now) {
				r.Triggered = true
				fired = append(fired, r)
			}
			updated = append(updated, r)
		}
	}

	sort.SliceStable(updated, func(i, j int) bool {
		return updated[i].DueAt.Before(updated[j].DueAt)
	})
	return updated, fired
}

// Delete removes the reminder with the given id. Deleting an unknown id is a no-op.
func Delete(reminders []models.Reminder, id string) []models.Reminder {
	out := make([]models.Reminder, 0, len(reminders))
	for _, r := range reminders {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

// Find returns the index of the reminder with the given id, or with an id
// starting with ref when only one does.
func Find(reminders []models.Reminder, ref string) (int, error) {
	match := -1
	for i := range reminders {
		if reminders[i].ID == ref {
			return i, nil
		}
		if ref != "" && strings.HasPrefix(reminders[i].ID, ref) {
			if match >= 0 {
				return -1, apperrors.NewValidation("id", fmt.Sprintf("%q matches more than one reminder", ref))
			}
			match = i
		}
	}
	if match < 0 {
		return -1, apperrors.NewNotFound("reminder", ref)
	}
	return match, nil
}

// Pending returns the reminders that have not fired yet.
func Pending(reminders []models.Reminder) []models.Reminder {
	var out []models.Reminder
	for _, r := range reminders {
		if !r.Triggered {
			out = append(out, r)
		}
	}
	return out
}

// Notifications converts fired reminders into reminder_due notifications.
func Notifications(fired []models.Reminder) []models.Notification {
	out := make([]models.Notification, 0, len(fired))
	for _, r := range fired {
		out = append(out, models.Notification{
			Kind:       models.NotificationReminderDue,
			ReminderID: r.ID,
			Text:       r.Text,
		})
	}
	return out
}
