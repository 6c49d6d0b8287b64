package storage

import (
	"errors"
	"strings"
	"time"

	"github.com/julianstephens/dashlit/internal/models"
)

var (
	// ErrNotFound is returned by GetCollection when nothing is stored under the key.
	ErrNotFound = errors.New("collection not found")
	// ErrNotInitialized is returned by Load before `dashlit init` has run.
	ErrNotInitialized = errors.New("storage not initialized, run 'dashlit init' first")
)

// CollectionInfo describes one stored collection.
type CollectionInfo struct {
	Key       string
	Revision  int
	Size      int
	UpdatedAt time.Time
}

// Provider is a key-value store holding one JSON document per collection.
// Writes replace the whole document; the last write wins.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Collections
	GetCollection(key string, dest any) error
	SaveCollection(key string, value any) error
	DeleteCollection(key string) error
	ListCollections() ([]CollectionInfo, error)

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Utils
	GetConfigPath() string
}

// IsPostgresURL reports whether config names a PostgreSQL database rather than a file.
func IsPostgresURL(config string) bool {
	lower := strings.ToLower(config)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

// IsJSONPath reports whether config names a JSON file store.
func IsJSONPath(config string) bool {
	return strings.HasSuffix(strings.ToLower(config), ".json")
}
