package todos

import (
	"testing"
	"time"

	apperrors "github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/models"
)

var now = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func TestAdd(t *testing.T) {
	todos, todo, err := Add(nil, "  Write report ", now)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if len(todos) != 1 || todo.Text != "Write report" || todo.Completed || todo.ID == "" {
		t.Errorf("Add() = %+v, %+v", todos, todo)
	}

	if _, _, err := Add(todos, "   ", now); !apperrors.IsValidation(err) {
		t.Errorf("Add(blank) error = %v, want ValidationError", err)
	}
}

func TestToggle(t *testing.T) {
	todos := []models.Todo{{ID: "aaa-1", Text: "One"}, {ID: "bbb-2", Text: "Two"}}

	got, todo, err := Toggle(todos, "bbb-2")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !todo.Completed || !got[1].Completed {
		t.Errorf("Toggle() did not complete task: %+v", got)
	}
	if todos[1].Completed {
		t.Error("Toggle mutated its input")
	}

	got, todo, _ = Toggle(got, "bbb")
	if todo.Completed || got[1].Completed {
		t.Errorf("second Toggle() did not reopen task: %+v", got)
	}

	if _, _, err := Toggle(todos, "zzz"); !apperrors.IsNotFound(err) {
		t.Errorf("Toggle(zzz) error = %v, want NotFoundError", err)
	}
}

func TestFind_AmbiguousPrefix(t *testing.T) {
	todos := []models.Todo{{ID: "abc-1"}, {ID: "abc-2"}}

	if _, err := Find(todos, "abc"); !apperrors.IsValidation(err) {
		t.Errorf("Find(abc) error = %v, want ValidationError", err)
	}
	if i, err := Find(todos, "abc-2"); err != nil || i != 1 {
		t.Errorf("Find(abc-2) = %d, %v", i, err)
	}
}

func TestSetComment(t *testing.T) {
	todos := []models.Todo{{ID: "a", Text: "One"}}

	got, todo, err := SetComment(todos, "a", "  blocked on review ")
	if err != nil {
		t.Fatalf("SetComment() error = %v", err)
	}
	if todo.Comment != "blocked on review" || got[0].Comment != "blocked on review" {
		t.Errorf("Comment = %q", todo.Comment)
	}

	got, _, _ = SetComment(got, "a", "")
	if got[0].Comment != "" {
		t.Errorf("empty comment did not clear: %q", got[0].Comment)
	}
}

func TestDelete(t *testing.T) {
	todos := []models.Todo{{ID: "a"}, {ID: "b"}}
	got := Delete(todos, "a")
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("Delete(a) = %+v", got)
	}
	if got := Delete(got, "a"); len(got) != 1 {
		t.Errorf("Delete(absent) = %+v", got)
	}
}

func TestProgressLine(t *testing.T) {
	tests := []struct {
		name  string
		todos []models.Todo
		want  string
	}{
		{name: "empty", todos: nil, want: ""},
		{name: "none completed", todos: []models.Todo{{}, {}}, want: ""},
		{name: "some completed", todos: []models.Todo{{Completed: true}, {}, {Completed: true}}, want: "2 of 3 tasks completed! Keep going!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressLine(tt.todos); got != tt.want {
				t.Errorf("ProgressLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
