package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/dashlit/internal/storage"
)

func (s *Store) GetCollection(key string, dest any) error {
	var value string
	err := s.db.QueryRow("SELECT value FROM collections WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("failed to read collection %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(value), dest); err != nil {
		return fmt.Errorf("failed to parse collection %q: %w", key, err)
	}
	return nil
}

func (s *Store) SaveCollection(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize collection %q: %w", key, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO collections (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at,
			revision = collections.revision + 1`,
		key, string(data), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to write collection %q: %w", key, err)
	}
	return nil
}

func (s *Store) DeleteCollection(key string) error {
	if _, err := s.db.Exec("DELETE FROM collections WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete collection %q: %w", key, err)
	}
	return nil
}

func (s *Store) ListCollections() ([]storage.CollectionInfo, error) {
	rows, err := s.db.Query("SELECT key, revision, length(value), updated_at FROM collections ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []storage.CollectionInfo
	for rows.Next() {
		var info storage.CollectionInfo
		var updatedAt string
		if err := rows.Scan(&info.Key, &info.Revision, &info.Size, &updatedAt); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, updatedAt); err == nil {
			info.UpdatedAt = t
		}
		out = append(out, info)
	}
	return out, rows.Err()
}
