package postgres

import (
	"errors"
	"os"
	"testing"

	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/storage"
)

// TestStore_Integration runs against a real database.
// Set POSTGRES_TEST_URL to run it, e.g.
// POSTGRES_TEST_URL="postgres://dashlit_user@localhost:5432/dashlit_test?sslmode=disable"
func TestStore_Integration(t *testing.T) {
	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	store := New(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	t.Run("Settings", func(t *testing.T) {
		settings, err := store.GetSettings()
		if err != nil {
			t.Fatalf("Failed to get settings: %v", err)
		}
		settings.BreakMinutes = 10
		if err := store.SaveSettings(settings); err != nil {
			t.Fatalf("Failed to save settings: %v", err)
		}
		updated, err := store.GetSettings()
		if err != nil {
			t.Fatalf("Failed to get updated settings: %v", err)
		}
		if updated.BreakMinutes != 10 {
			t.Errorf("Expected break minutes 10, got %d", updated.BreakMinutes)
		}
	})

	t.Run("Collections", func(t *testing.T) {
		const key = "integration_reminders"
		defer store.DeleteCollection(key)

		in := []models.Reminder{{ID: "r1", Text: "Call mom"}}
		if err := store.SaveCollection(key, in); err != nil {
			t.Fatalf("SaveCollection() error = %v", err)
		}
		var out []models.Reminder
		if err := store.GetCollection(key, &out); err != nil {
			t.Fatalf("GetCollection() error = %v", err)
		}
		if len(out) != 1 || out[0].Text != "Call mom" {
			t.Errorf("GetCollection() = %+v", out)
		}
		if err := store.DeleteCollection(key); err != nil {
			t.Fatalf("DeleteCollection() error = %v", err)
		}
		if err := store.GetCollection(key, &out); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetCollection(after delete) error = %v", err)
		}
	})
}
