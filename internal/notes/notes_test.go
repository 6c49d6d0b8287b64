package notes

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/dashlit/internal/constants"
	apperrors "github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/models"
)

var now = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func TestAdd(t *testing.T) {
	notes, n, err := Add(nil, " Groceries ", now)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if len(notes) != 1 || n.Title != "Groceries" || n.Content != "" {
		t.Errorf("Add() = %+v", n)
	}
	if !n.CreatedAt.Equal(now) || !n.UpdatedAt.Equal(now) {
		t.Errorf("timestamps = %v / %v", n.CreatedAt, n.UpdatedAt)
	}
	if _, _, err := Add(notes, "", now); !apperrors.IsValidation(err) {
		t.Errorf("Add(empty) error = %v, want ValidationError", err)
	}
}

func TestUpdate(t *testing.T) {
	notes, n, _ := Add(nil, "Draft", now)
	later := now.Add(time.Hour)

	got, updated, err := Update(notes, n.ID, "Plan", "# Week\n\nShip **v1**", later)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "Plan" || !updated.UpdatedAt.Equal(later) {
		t.Errorf("Update() = %+v", updated)
	}
	if !strings.Contains(updated.Content, "<h1") || !strings.Contains(updated.Content, "<strong>v1</strong>") {
		t.Errorf("Content = %q", updated.Content)
	}
	if got[0].Content != updated.Content {
		t.Error("collection not updated")
	}
	if notes[0].Title != "Draft" {
		t.Error("Update mutated its input")
	}
}

func TestUpdate_BlankTitleKeepsNote(t *testing.T) {
	notes, n, _ := Add(nil, "Draft", now)

	got, kept, err := Update(notes, n.ID, "  ", "new body", now.Add(time.Hour))
	if !apperrors.IsValidation(err) {
		t.Fatalf("Update() error = %v, want ValidationError", err)
	}
	if kept.Title != "Draft" || kept.Content != "" || !kept.UpdatedAt.Equal(now) {
		t.Errorf("note changed: %+v", kept)
	}
	if got[0] != notes[0] {
		t.Error("collection changed")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	if _, _, err := Update(nil, "missing", "t", "", now); !apperrors.IsNotFound(err) {
		t.Errorf("Update() error = %v, want NotFoundError", err)
	}
}

func TestRender_Sanitizes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		absent  string
		present string
	}{
		{name: "script tag", input: "hello <script>alert(1)</script>", absent: "<script", present: "hello"},
		{name: "javascript link", input: "[x](javascript:alert(1))", absent: "javascript:"},
		{name: "gfm strikethrough", input: "~~done~~", present: "<del>done</del>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.input)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if tt.absent != "" && strings.Contains(got, tt.absent) {
				t.Errorf("Render() = %q, must not contain %q", got, tt.absent)
			}
			if tt.present != "" && !strings.Contains(got, tt.present) {
				t.Errorf("Render() = %q, want to contain %q", got, tt.present)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("a", constants.NotePreviewLen+10)

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: constants.NoteEmptyPreview},
		{name: "markup only", content: "<p></p>", want: constants.NoteEmptyPreview},
		{name: "strips tags", content: "<h1>Week</h1>\n<p>Ship <strong>v1</strong> &amp; rest</p>", want: "Week Ship v1 & rest"},
		{name: "truncates", content: "<p>" + long + "</p>", want: long[:constants.NotePreviewLen] + "..."},
		{name: "exact length kept", content: long[:constants.NotePreviewLen], want: long[:constants.NotePreviewLen]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(models.Note{Content: tt.content}); got != tt.want {
				t.Errorf("Preview() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortedAndFind(t *testing.T) {
	notes := []models.Note{
		{ID: "a", Title: "Old", UpdatedAt: now},
		{ID: "b", Title: "New", UpdatedAt: now.Add(2 * time.Hour)},
		{ID: "c", Title: "Mid", UpdatedAt: now.Add(time.Hour)},
	}

	sorted := Sorted(notes)
	want := []string{"b", "c", "a"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Errorf("Sorted()[%d] = %s, want %s", i, sorted[i].ID, id)
		}
	}
	if notes[0].ID != "a" {
		t.Error("Sorted mutated its input")
	}

	if i, err := Find(notes, "mid"); err != nil || i != 2 {
		t.Errorf("Find(mid) = %d, %v", i, err)
	}
	if got := Delete(notes, "b"); len(got) != 2 {
		t.Errorf("Delete(b) = %+v", got)
	}
}

func TestRetitle(t *testing.T) {
	notes, n, err := Add(nil, "Draft", now)
	if err != nil {
		t.Fatal(err)
	}
	notes, _, err = Update(notes, n.ID, "Draft", "body text", now)
	if err != nil {
		t.Fatal(err)
	}

	later := now.Add(time.Hour)
	notes, got, err := Retitle(notes, n.ID, " Final ", later)
	if err != nil {
		t.Fatalf("Retitle() error = %v", err)
	}
	if got.Title != "Final" || !got.UpdatedAt.Equal(later) || PlainText(got.Content) != "body text" {
		t.Errorf("Retitle() = %+v", got)
	}
	if _, _, err := Retitle(notes, n.ID, "  ", later); !apperrors.IsValidation(err) {
		t.Errorf("Retitle(blank) error = %v", err)
	}
}
