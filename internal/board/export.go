package board

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/pomodoro"
)

// Snapshot is every collection on the board in one document.
type Snapshot struct {
	Version    string                 `json:"version" yaml:"version"`
	ExportedAt time.Time              `json:"exported_at" yaml:"exported_at"`
	Settings   models.Settings        `json:"settings" yaml:"settings"`
	Habits     []models.Habit         `json:"habits" yaml:"habits"`
	Reminders  []models.Reminder      `json:"reminders" yaml:"reminders"`
	Todos      []models.Todo          `json:"todos" yaml:"todos"`
	Notes      []models.Note          `json:"notes" yaml:"notes"`
	Timer      models.Timer           `json:"timer" yaml:"timer"`
	Activity   []models.ActivityEntry `json:"activity" yaml:"activity"`
}

// Snapshot collects every collection.
func (s *Service) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.settings()
	snap := Snapshot{
		Version:    constants.Version,
		ExportedAt: s.now(settings),
		Settings:   settings,
	}

	var err error
	if snap.Habits, err = s.loadHabits(settings); err != nil {
		return Snapshot{}, err
	}
	if snap.Reminders, err = s.loadReminders(); err != nil {
		return Snapshot{}, err
	}
	if snap.Todos, err = s.loadTodos(); err != nil {
		return Snapshot{}, err
	}
	if snap.Notes, err = s.loadNotes(); err != nil {
		return Snapshot{}, err
	}
	if snap.Timer, err = s.loadTimer(pomodoro.DurationsFromSettings(settings)); err != nil {
		return Snapshot{}, err
	}
	if snap.Activity, err = s.loadLogs(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Export writes a snapshot to w as "json" or "yaml".
func (s *Service) Export(w io.Writer, format string) error {
	snap, err := s.Snapshot()
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format %q (use json or yaml)", format)
	}
}
