// Package jsonfile stores every collection in a single JSON document on disk.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/storage"
)

const fileVersion = 1

type entry struct {
	Value     json.RawMessage `json:"value"`
	Revision  int             `json:"revision"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type document struct {
	Version     int              `json:"version"`
	Settings    models.Settings  `json:"settings"`
	Collections map[string]entry `json:"collections"`
}

type Store struct {
	path string
	doc  *document

	// modTime and size describe the file as last read or written, so writes
	// from other processes are picked up before the next operation.
	modTime time.Time
	size    int64
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.read()
	}

	s.doc = &document{
		Version:     fileVersion,
		Settings:    models.DefaultSettings(),
		Collections: make(map[string]entry),
	}
	return s.save()
}

func (s *Store) Load() error {
	if s.doc != nil {
		return nil
	}
	return s.read()
}

func (s *Store) read() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return storage.ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Version > fileVersion {
		return fmt.Errorf("storage file version (%d) is newer than supported version (%d) - please upgrade the application", doc.Version, fileVersion)
	}
	if doc.Collections == nil {
		doc.Collections = make(map[string]entry)
	}
	models.ApplyDefaultSettings(&doc.Settings)
	s.doc = doc
	s.remember()
	return nil
}

// remember records the file's current stat.
func (s *Store) remember() {
	info, err := os.Stat(s.path)
	if err != nil {
		return
	}
	s.modTime = info.ModTime()
	s.size = info.Size()
}

// changed reports whether the file differs from the last read or write.
func (s *Store) changed() bool {
	info, err := os.Stat(s.path)
	if err != nil {
		return false
	}
	return !info.ModTime().Equal(s.modTime) || info.Size() != s.size
}

func (s *Store) Close() error {
	s.doc = nil
	return nil
}

// save writes the document to a temporary file and renames it into place.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	s.remember()
	return nil
}

// loaded makes sure the document is in memory and re-reads it when another
// process has written the file since.
func (s *Store) loaded() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if s.changed() {
		return s.read()
	}
	return nil
}

func (s *Store) GetCollection(key string, dest any) error {
	if err := s.loaded(); err != nil {
		return err
	}
	e, ok := s.doc.Collections[key]
	if !ok {
		return storage.ErrNotFound
	}
	if err := json.Unmarshal(e.Value, dest); err != nil {
		return fmt.Errorf("failed to parse collection %q: %w", key, err)
	}
	return nil
}

func (s *Store) SaveCollection(key string, value any) error {
	if err := s.loaded(); err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize collection %q: %w", key, err)
	}
	e := s.doc.Collections[key]
	e.Value = data
	e.Revision++
	e.UpdatedAt = time.Now().UTC()
	s.doc.Collections[key] = e
	return s.save()
}

func (s *Store) DeleteCollection(key string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.doc.Collections[key]; !ok {
		return nil
	}
	delete(s.doc.Collections, key)
	return s.save()
}

func (s *Store) ListCollections() ([]storage.CollectionInfo, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	out := make([]storage.CollectionInfo, 0, len(s.doc.Collections))
	for key, e := range s.doc.Collections {
		out = append(out, storage.CollectionInfo{
			Key:       key,
			Revision:  e.Revision,
			Size:      len(e.Value),
			UpdatedAt: e.UpdatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (s *Store) GetSettings() (models.Settings, error) {
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.doc.Settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *Store) GetConfigPath() string {
	return s.path
}
