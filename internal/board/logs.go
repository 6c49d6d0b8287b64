package board

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/dashlit/internal/activity"
	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/models"
)

func (s *Service) loadLogs() ([]models.ActivityEntry, error) {
	var entries []models.ActivityEntry
	if err := s.load(constants.KeyActivity, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Logs returns activity entries newest first, optionally filtered by category.
func (s *Service) Logs(category models.ActivityCategory) ([]models.ActivityEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadLogs()
	if err != nil {
		return nil, err
	}
	return activity.Filter(entries, category), nil
}

// RenderLogs formats the whole activity log in the user's timezone.
func (s *Service) RenderLogs() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderLogs()
}

func (s *Service) renderLogs() (string, error) {
	entries, err := s.loadLogs()
	if err != nil {
		return "", err
	}
	loc := s.now(s.settings()).Location()
	return activity.Render(entries, loc), nil
}

// Location returns the user's configured timezone.
func (s *Service) Location() *time.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now(s.settings()).Location()
}

// ExportLogs writes the activity log to dashlit-logs-YYYY-MM-DD.txt in dir.
func (s *Service) ExportLogs(dir string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadLogs()
	if err != nil {
		return "", err
	}
	now := s.now(s.settings())
	path := filepath.Join(dir, activity.ExportFileName(now))
	content := activity.Render(entries, now.Location())
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to export logs: %w", err)
	}
	s.record(models.CategorySystem, "Logs exported", fmt.Sprintf("%d entries exported", len(entries)), now)
	return path, nil
}

func (s *Service) ClearLogs() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.save(constants.KeyActivity, activity.Clear(s.now(s.settings())))
	return nil
}

// LogSaver persists a rendered activity log, e.g. backup.Manager.SaveLogs.
type LogSaver interface {
	SaveLogs(content string) (string, error)
}

// AutosaveLogs hands the rendered activity log to saver.
func (s *Service) AutosaveLogs(saver LogSaver) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.renderLogs()
	if err != nil {
		return "", err
	}
	return saver.SaveLogs(content + "\n")
}
