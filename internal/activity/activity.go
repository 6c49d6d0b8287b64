package activity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/models"
)

const lineTimeFormat = "2006-01-02 15:04:05"

// Record prepends a new entry and trims the log to the newest MaxActivityEntries.
func Record(entries []models.ActivityEntry, category models.ActivityCategory, action, details string, now time.Time) ([]models.ActivityEntry, models.ActivityEntry) {
	e := models.ActivityEntry{
		ID:        uuid.New().String(),
		Timestamp: now,
		Action:    action,
		Category:  category,
		Details:   details,
	}

	n := len(entries) + 1
	if n > constants.MaxActivityEntries {
		n = constants.MaxActivityEntries
	}
	out := make([]models.ActivityEntry, 0, n)
	out = append(out, e)
	out = append(out, entries[:n-1]...)
	return out, e
}

// Clear empties the log, leaving a single entry recording the clear.
func Clear(now time.Time) []models.ActivityEntry {
	out, _ := Record(nil, models.CategorySystem, "Logs cleared", "All activity logs removed", now)
	return out
}

// Filter returns the entries in category, or all entries when category is empty.
func Filter(entries []models.ActivityEntry, category models.ActivityCategory) []models.ActivityEntry {
	if category == "" {
		return entries
	}
	var out []models.ActivityEntry
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// FormatLine renders an entry as "[timestamp] CATEGORY: action - details".
func FormatLine(e models.ActivityEntry, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	line := fmt.Sprintf("[%s] %s: %s", e.Timestamp.In(loc).Format(lineTimeFormat), strings.ToUpper(string(e.Category)), e.Action)
	if e.Details != "" {
		line += " - " + e.Details
	}
	return line
}

// Render formats every entry, one per line, newest first.
func Render(entries []models.ActivityEntry, loc *time.Location) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = FormatLine(e, loc)
	}
	return strings.Join(lines, "\n")
}

// ExportFileName is the file name used by `dashlit log export` on the given day.
func ExportFileName(now time.Time) string {
	return constants.LogExportPrefix + now.Format(constants.DateFormat) + ".txt"
}

// ParseCategory maps user input such as "todo" or "HABIT" to a category.
func ParseCategory(s string) (models.ActivityCategory, bool) {
	c := models.ActivityCategory(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case models.CategoryTodo, models.CategoryHabit, models.CategoryReminder,
		models.CategoryNote, models.CategoryTimer, models.CategorySystem:
		return c, true
	}
	return "", false
}
