// Package board drives the dashlit collections: each operation loads the
// collection it needs, applies a pure update from the domain packages, writes
// the whole collection back and forwards notifications to a sink.
package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/julianstephens/dashlit/internal/activity"
	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/logger"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/notifier"
	"github.com/julianstephens/dashlit/internal/storage"
	"github.com/julianstephens/dashlit/internal/utils"
)

// Clock returns the current wall-clock time.
type Clock func() time.Time

// Service serializes every board operation behind a single mutex so the watch
// loop's jobs never interleave a mutation.
type Service struct {
	mu       sync.Mutex
	store    storage.Provider
	sink     notifier.Sink
	clock    Clock
	warnings []error
	// unsaved holds collections whose last write failed; they shadow the
	// store until a later write of the same key succeeds.
	unsaved  map[string]json.RawMessage
}

type Option func(*Service)

// WithClock replaces time.Now as the service's time source.
func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithSink sets where notifications are delivered.
func WithSink(sink notifier.Sink) Option {
	return func(s *Service) { s.sink = sink }
}

func New(store storage.Provider, opts ...Option) *Service {
	s := &Service{
		store:   store,
		sink:    notifier.Discard{},
		clock:   time.Now,
		unsaved: make(map[string]json.RawMessage),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Warnings returns and clears the persistence failures collected since the
// last call. A failed write never rolls back the in-memory result.
func (s *Service) Warnings() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.warnings
	s.warnings = nil
	return w
}

// get reads a collection, preferring a copy that failed to persist.
func (s *Service) get(key string, dest any) error {
	if data, ok := s.unsaved[key]; ok {
		return json.Unmarshal(data, dest)
	}
	return s.store.GetCollection(key, dest)
}

func (s *Service) load(key string, dest any) error {
	err := s.get(key, dest)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	return nil
}

// save writes a collection through to storage. Failures are logged and kept
// as warnings, and the value stays authoritative for this service.
func (s *Service) save(key string, value any) {
	err := s.store.SaveCollection(key, value)
	if err == nil {
		delete(s.unsaved, key)
		return
	}
	logger.Warn("Failed to persist collection", "key", key, "error", err)
	s.warnings = append(s.warnings, fmt.Errorf("failed to save %s: %w", key, err))

	data, merr := json.Marshal(value)
	if merr != nil {
		logger.Warn("Failed to keep unsaved collection", "key", key, "error", merr)
		return
	}
	s.unsaved[key] = data
}

// Unsaved lists the collections that are only held in memory because their
// last write failed.
func (s *Service) Unsaved() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.unsaved))
	for key := range s.unsaved {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (s *Service) settings() models.Settings {
	settings, err := s.store.GetSettings()
	if err != nil {
		logger.Warn("Failed to read settings, using defaults", "error", err)
		return models.DefaultSettings()
	}
	models.ApplyDefaultSettings(&settings)
	return settings
}

// now returns the current time in the user's configured timezone.
func (s *Service) now(settings models.Settings) time.Time {
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		logger.Warn("Invalid timezone, using local time", "timezone", settings.Timezone, "error", err)
		loc = time.Local
	}
	return s.clock().In(loc)
}

// record appends an entry to the activity log.
func (s *Service) record(category models.ActivityCategory, action, details string, now time.Time) {
	var entries []models.ActivityEntry
	if err := s.load(constants.KeyActivity, &entries); err != nil {
		logger.Warn("Failed to load activity log", "error", err)
		return
	}
	entries, _ = activity.Record(entries, category, action, details, now)
	s.save(constants.KeyActivity, entries)
	logger.Debug(action, "category", category, "details", details)
}

func (s *Service) notify(settings models.Settings, notifications ...models.Notification) {
	if !settings.NotificationsEnabled || len(notifications) == 0 {
		return
	}
	if err := notifier.Deliver(s.sink, notifications); err != nil {
		logger.Warn("Some notifications were not delivered", "error", err)
	}
}

func quoted(text string) string {
	return fmt.Sprintf("%q", text)
}
