// Package backup snapshots the local board database and keeps dated text
// backups of the activity log.
package backup

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/logger"
)

const (
	minuteStamp = "20060102-1504"
	secondStamp = "20060102-150405"
)

// ErrUnsupported is returned for stores that cannot be snapshotted as a file.
var ErrUnsupported = errors.New("backups are only supported for SQLite and JSON file stores")

// BackupInfo describes one snapshot on disk.
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Name returns the snapshot's file name.
func (b BackupInfo) Name() string {
	return filepath.Base(b.Path)
}

// Manager handles backup operations for a single store file. Snapshots live in
// a "backups" directory next to the store.
type Manager struct {
	dbPath    string
	backupDir string
	suffix    string
	now       func() time.Time
}

// NewManager creates a backup manager for a SQLite (.db) or JSON (.json) store.
func NewManager(dbPath string) *Manager {
	suffix := constants.BackupFileSuffix
	if strings.EqualFold(filepath.Ext(dbPath), ".json") {
		suffix = ".json"
	}
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), constants.BackupDirName),
		suffix:    suffix,
		now:       time.Now,
	}
}

// WithClock overrides the time source used for snapshot names and log backups.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// BackupDir returns the backup directory path.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

func (m *Manager) isJSON() bool {
	return m.suffix == ".json"
}

// Create snapshots the store and rotates old snapshots beyond MaxBackups.
func (m *Manager) Create() (BackupInfo, error) {
	return m.create(true)
}

func (m *Manager) create(rotate bool) (BackupInfo, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return BackupInfo{}, fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return BackupInfo{}, fmt.Errorf("database does not exist: %s", m.dbPath)
	}

	backupPath, stamp, err := m.nextName()
	if err != nil {
		return BackupInfo{}, err
	}

	if m.isJSON() {
		err = copyFile(m.dbPath, backupPath)
	} else {
		err = m.vacuumInto(backupPath)
	}
	if err != nil {
		return BackupInfo{}, fmt.Errorf("failed to backup database: %w", err)
	}

	if rotate {
		if err := m.rotate(); err != nil {
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}

	info, err := os.Stat(backupPath)
	if err != nil {
		return BackupInfo{}, err
	}
	logger.Info("Backup created", "path", backupPath)
	return BackupInfo{Path: backupPath, Timestamp: stamp, Size: info.Size()}, nil
}

// nextName picks a free snapshot name: minute precision, then seconds, then a
// numeric counter.
func (m *Manager) nextName() (string, time.Time, error) {
	now := m.now()
	build := func(stamp string) string {
		return filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+m.suffix)
	}

	candidate := build(now.Format(minuteStamp))
	if !exists(candidate) {
		return candidate, now.Truncate(time.Minute), nil
	}
	stamp := now.Format(secondStamp)
	candidate = build(stamp)
	for counter := 1; exists(candidate); counter++ {
		if counter > 100 {
			return "", time.Time{}, errors.New("failed to generate unique backup filename")
		}
		candidate = build(fmt.Sprintf("%s-%d", stamp, counter))
	}
	return candidate, now.Truncate(time.Second), nil
}

func (m *Manager) vacuumInto(destPath string) error {
	srcDB, err := sql.Open("sqlite", m.dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	if err := verifySQLite(srcDB); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}
	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		logger.Debug("VACUUM INTO failed, copying file instead", "error", err)
		return copyFile(m.dbPath, destPath)
	}
	return nil
}

// List returns all snapshots, newest first.
func (m *Manager) List() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []BackupInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		stamp, ok := parseSnapshotName(entry.Name(), m.suffix)
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: stamp,
			Size:      info.Size(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// parseSnapshotName extracts the timestamp from "dashlit-YYYYMMDD-HHMM[SS][-N].db".
func parseSnapshotName(name, suffix string) (time.Time, bool) {
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, suffix) {
		return time.Time{}, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), suffix)

	parts := strings.Split(stamp, "-")
	if len(parts) == 3 {
		stamp = parts[0] + "-" + parts[1]
	}
	for _, layout := range []string{minuteStamp, secondStamp} {
		if t, err := time.ParseInLocation(layout, stamp, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Resolve maps a snapshot reference (a path or a file name inside the backup
// directory) to a path on disk.
func (m *Manager) Resolve(ref string) (string, error) {
	candidates := []string{ref}
	if !filepath.IsAbs(ref) && filepath.Base(ref) == ref {
		candidates = append([]string{filepath.Join(m.backupDir, ref)}, candidates...)
	}
	for _, c := range candidates {
		if exists(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("backup file does not exist: %s", ref)
}

// Restore replaces the store file with a snapshot. The current store is
// snapshotted first (without rotation) and that safety copy is returned.
func (m *Manager) Restore(backupPath string) (*BackupInfo, error) {
	if !exists(backupPath) {
		return nil, fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err := m.verify(backupPath); err != nil {
		return nil, fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var safety *BackupInfo
	if exists(m.dbPath) {
		info, err := m.create(false)
		if err != nil {
			return nil, fmt.Errorf("failed to backup current database before restore: %w", err)
		}
		safety = &info
	}

	tempPath := m.dbPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return nil, fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, m.dbPath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tempPath, "error", removeErr)
		}
		return nil, fmt.Errorf("failed to restore database: %w", err)
	}

	logger.Info("Backup restored", "from", backupPath)
	return safety, nil
}

func (m *Manager) verify(path string) error {
	if m.isJSON() {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !json.Valid(data) {
			return errors.New("not a valid JSON document")
		}
		return nil
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()
	return verifySQLite(db)
}

func verifySQLite(db *sql.DB) error {
	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}
