package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/logger"
)

// LogBackupName returns the daily activity-log backup file name for day.
func LogBackupName(day time.Time) string {
	return constants.LogBackupPrefix + day.Format(constants.DateFormat) + constants.LogBackupSuffix
}

// SaveLogs writes the rendered activity log to today's log backup, replacing
// any earlier backup from the same day, then prunes expired log backups.
func (m *Manager) SaveLogs(content string) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	now := m.now()
	path := filepath.Join(m.backupDir, LogBackupName(now))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0600); err != nil {
		return "", fmt.Errorf("failed to write log backup: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to write log backup: %w", err)
	}

	if removed, err := m.PruneLogs(); err != nil {
		logger.Warn("Failed to prune log backups", "error", err)
	} else if len(removed) > 0 {
		logger.Debug("Pruned log backups", "count", len(removed))
	}
	return path, nil
}

// PruneLogs deletes log backups dated more than LogBackupRetainDays before today.
func (m *Manager) PruneLogs() ([]string, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	now := m.now()
	today, _ := time.ParseInLocation(constants.DateFormat, now.Format(constants.DateFormat), now.Location())
	cutoff := today.AddDate(0, 0, -constants.LogBackupRetainDays)

	var removed []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, constants.LogBackupPrefix) || !strings.HasSuffix(name, constants.LogBackupSuffix) {
			continue
		}
		dateStr := strings.TrimSuffix(strings.TrimPrefix(name, constants.LogBackupPrefix), constants.LogBackupSuffix)
		day, err := time.ParseInLocation(constants.DateFormat, dateStr, now.Location())
		if err != nil || !day.Before(cutoff) {
			continue
		}
		path := filepath.Join(m.backupDir, name)
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("failed to remove log backup %s: %w", name, err)
		}
		removed = append(removed, path)
	}
	return removed, nil
}
