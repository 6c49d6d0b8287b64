// Package habits implements the habit collection and its streak state machine.
//
// Every function is pure: collections are passed in and a new collection is
// returned, so the board service decides when to persist. Days are calendar
// dates (YYYY-MM-DD) taken from the caller-supplied "today" in its own location.
package habits

import (
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/utils"
)

// New creates a habit with no completions and a zero streak.
func New(name string, now time.Time) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, apperrors.NewValidation("name", "habit name cannot be empty")
	}
	return models.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
	}, nil
}

// ToggleCompletion completes h for today, or undoes today's completion when
// it is already completed. A notification is returned only on completion.
func ToggleCompletion(h models.Habit, today time.Time) (models.Habit, *models.Notification) {
	date := utils.DateString(today)

	// LastCompletedDate is authoritative; CompletedToday may be stale.
	if h.LastCompletedDate == date {
		h.CompletedToday = false
		h.LastCompletedDate = ""
		if h.Streak > 0 {
			h.Streak--
		}
		return h, nil
	}

	yesterday, _ := utils.PreviousDay(date)
	if !h.HasCompletion() || h.LastCompletedDate == yesterday {
		h.Streak++
	} else {
		h.Streak = 1
	}
	h.LastCompletedDate = date
	h.CompletedToday = true

	return h, &models.Notification{
		Kind:    models.NotificationHabitCompleted,
		HabitID: h.ID,
		Streak:  h.Streak,
		Text:    h.Name,
	}
}

// RefreshDailyState recomputes CompletedToday for every habit. It never
// touches a streak and is safe to call any number of times.
func RefreshDailyState(habits []models.Habit, today time.Time) []models.Habit {
	date := utils.DateString(today)
	out := make([]models.Habit, len(habits))
	for i, h := range habits {
		h.CompletedToday = h.LastCompletedDate == date
		out[i] = h
	}
	return out
}

// Rename replaces the habit's name with the trimmed newName.
func Rename(h models.Habit, newName string) (models.Habit, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return h, apperrors.NewValidation("name", "habit name cannot be empty")
	}
	h.Name = newName
	return h, nil
}

// Delete removes the habit with the given id. Deleting an unknown id is a no-op.
func Delete(habits []models.Habit, id string) []models.Habit {
	out := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if h.ID != id {
			out = append(out, h)
		}
	}
	return out
}

// Find returns the index of the habit whose ID or name matches ref.
// IDs win over names; name matching is case-insensitive.
func Find(habits []models.Habit, ref string) (int, error) {
	for i := range habits {
		if habits[i].ID == ref {
			return i, nil
		}
	}
	for i := range habits {
		if strings.EqualFold(habits[i].Name, ref) {
			return i, nil
		}
	}
	return -1, apperrors.NewNotFound("habit", ref)
}

// Replace returns a copy of habits with the entry sharing h's ID swapped for h.
func Replace(habits []models.Habit, h models.Habit) []models.Habit {
	out := make([]models.Habit, len(habits))
	copy(out, habits)
	for i := range out {
		if out[i].ID == h.ID {
			out[i] = h
		}
	}
	return out
}
