// Package notes manages freeform notes. Note bodies are written in Markdown,
// rendered to HTML with goldmark and sanitized before they are stored.
package notes

import (
	"bytes"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/julianstephens/dashlit/internal/constants"
	apperrors "github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/models"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps(), goldmarkhtml.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
	textOnly  = bluemonday.StrictPolicy()
)

// Add creates an empty note with the given title.
func Add(notes []models.Note, title string, now time.Time) ([]models.Note, models.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return notes, models.Note{}, apperrors.NewValidation("title", "note title cannot be empty")
	}
	n := models.Note{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	out := append(append(make([]models.Note, 0, len(notes)+1), notes...), n)
	return out, n, nil
}

// Update replaces the title and body of a note. The body is Markdown; it is
// stored as sanitized HTML. An update with a blank title is rejected and the
// note keeps its previous state.
func Update(notes []models.Note, id, title, markdown string, now time.Time) ([]models.Note, models.Note, error) {
	i, err := Find(notes, id)
	if err != nil {
		return notes, models.Note{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return notes, notes[i], apperrors.NewValidation("title", "note title cannot be empty")
	}
	content, err := Render(markdown)
	if err != nil {
		return notes, notes[i], err
	}

	out := make([]models.Note, len(notes))
	copy(out, notes)
	out[i].Title = title
	out[i].Content = content
	out[i].UpdatedAt = now
	return out, out[i], nil
}

// Retitle changes only a note's title. A blank title is rejected.
func Retitle(notes []models.Note, id, title string, now time.Time) ([]models.Note, models.Note, error) {
	i, err := Find(notes, id)
	if err != nil {
		return notes, models.Note{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return notes, notes[i], apperrors.NewValidation("title", "note title cannot be empty")
	}
	out := make([]models.Note, len(notes))
	copy(out, notes)
	out[i].Title = title
	out[i].UpdatedAt = now
	return out, out[i], nil
}

// Render converts Markdown to sanitized HTML.
func Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render note: %w", err)
	}
	return string(sanitizer.SanitizeBytes(buf.Bytes())), nil
}

// PlainText strips markup from stored note content.
func PlainText(content string) string {
	text := html.UnescapeString(textOnly.Sanitize(content))
	return strings.Join(strings.Fields(text), " ")
}

// Preview returns the first characters of a note's text for list views.
func Preview(n models.Note) string {
	text := PlainText(n.Content)
	if text == "" {
		return constants.NoteEmptyPreview
	}
	if utf8.RuneCountInString(text) <= constants.NotePreviewLen {
		return text
	}
	runes := []rune(text)
	return string(runes[:constants.NotePreviewLen]) + "..."
}

// Delete removes the note with the given id. Deleting an unknown id is a no-op.
func Delete(notes []models.Note, id string) []models.Note {
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

// Find returns the index of the note whose ID or title matches ref.
func Find(notes []models.Note, ref string) (int, error) {
	for i := range notes {
		if notes[i].ID == ref {
			return i, nil
		}
	}
	for i := range notes {
		if strings.EqualFold(notes[i].Title, ref) {
			return i, nil
		}
	}
	return -1, apperrors.NewNotFound("note", ref)
}

// Sorted returns a copy of notes ordered by most recently updated first.
func Sorted(notes []models.Note) []models.Note {
	out := make([]models.Note, len(notes))
	copy(out, notes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}
