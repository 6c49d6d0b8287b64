package todos

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/models"
)

// Add appends a new open task.
func Add(todos []models.Todo, text string, now time.Time) ([]models.Todo, models.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return todos, models.Todo{}, apperrors.NewValidation("text", "task text cannot be empty")
	}
	t := models.Todo{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: now,
	}
	out := append(append(make([]models.Todo, 0, len(todos)+1), todos...), t)
	return out, t, nil
}

// Toggle flips the completed state of the task with the given id.
func Toggle(todos []models.Todo, id string) ([]models.Todo, models.Todo, error) {
	i, err := Find(todos, id)
	if err != nil {
		return todos, models.Todo{}, err
	}
	out := clone(todos)
	out[i].Completed = !out[i].Completed
	return out, out[i], nil
}

// SetComment stores a trimmed comment on the task. An empty comment clears it.
func SetComment(todos []models.Todo, id, comment string) ([]models.Todo, models.Todo, error) {
	i, err := Find(todos, id)
	if err != nil {
		return todos, models.Todo{}, err
	}
	out := clone(todos)
	out[i].Comment = strings.TrimSpace(comment)
	return out, out[i], nil
}

// Delete removes the task with the given id. Deleting an unknown id is a no-op.
func Delete(todos []models.Todo, id string) []models.Todo {
	out := make([]models.Todo, 0, len(todos))
	for _, t := range todos {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// Find returns the index of the task whose ID matches ref, or whose ID starts
// with ref when the prefix is unambiguous.
func Find(todos []models.Todo, ref string) (int, error) {
	match := -1
	for i := range todos {
		if todos[i].ID == ref {
			return i, nil
		}
		if ref != "" && strings.HasPrefix(todos[i].ID, ref) {
			if match >= 0 {
				return -1, apperrors.NewValidation("id", fmt.Sprintf("%q matches more than one task", ref))
			}
			match = i
		}
	}
	if match < 0 {
		return -1, apperrors.NewNotFound("task", ref)
	}
	return match, nil
}

// Summary returns the number of completed tasks and the total.
func Summary(todos []models.Todo) (completed, total int) {
	for _, t := range todos {
		if t.Completed {
			completed++
		}
	}
	return completed, len(todos)
}

// ProgressLine renders the progress message shown after a toggle, or "" when
// nothing is completed yet.
func ProgressLine(todos []models.Todo) string {
	completed, total := Summary(todos)
	if completed == 0 {
		return ""
	}
	return fmt.Sprintf("%d of %d tasks completed! Keep going!", completed, total)
}

func clone(todos []models.Todo) []models.Todo {
	out := make([]models.Todo, len(todos))
	copy(out, todos)
	return out
}
