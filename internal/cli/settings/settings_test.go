package settings

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/julianstephens/dashlit/internal/cli"
	apperrors "github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	ctx := &cli.Context{
		Store: store,
		Out:   &bytes.Buffer{},
		Err:   &bytes.Buffer{},
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, cleanup
}

func TestSettingsCmd_List(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&SettingsCmd{List: true}).Run(ctx); err != nil {
		t.Errorf("settings list failed: %v", err)
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	sound := false
	work := 50
	tz := "UTC"
	cmd := &SettingsCmd{Sound: &sound, WorkMinutes: &work, Timezone: &tz}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to read settings: %v", err)
	}
	if settings.SoundEnabled {
		t.Error("SoundEnabled was not turned off")
	}
	if settings.WorkMinutes != 50 {
		t.Errorf("WorkMinutes = %d, want 50", settings.WorkMinutes)
	}
	if settings.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want UTC", settings.Timezone)
	}
}

func TestSettingsCmd_Validation(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	zero, big, bad := 0, 500, "Mars/Olympus"
	tests := []struct {
		name string
		cmd  SettingsCmd
	}{
		{"work minutes too low", SettingsCmd{WorkMinutes: &zero}},
		{"work minutes too high", SettingsCmd{WorkMinutes: &big}},
		{"break minutes too high", SettingsCmd{BreakMinutes: &big}},
		{"poll interval zero", SettingsCmd{PollInterval: &zero}},
		{"unknown timezone", SettingsCmd{Timezone: &bad}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Run(ctx)
			if !apperrors.IsValidation(err) {
				t.Errorf("Run() error = %v, want a validation error", err)
			}
		})
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to read settings: %v", err)
	}
	if settings.WorkMinutes != 25 {
		t.Errorf("rejected update changed WorkMinutes to %d", settings.WorkMinutes)
	}
}
