package habits

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer, *time.Time) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	out := &bytes.Buffer{}
	ctx := &cli.Context{
		Store: store,
		Out:   out,
		Err:   &bytes.Buffer{},
		Clock: func() time.Time { return now },
	}
	return ctx, out, &now
}

func TestHabitCommands(t *testing.T) {
	ctx, out, _ := setupTestDB(t)

	if err := (&HabitAddCmd{Name: "Stretch"}).Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := (&HabitDoneCmd{Habit: "stretch"}).Run(ctx); err != nil {
		t.Fatalf("done failed: %v", err)
	}
	if !strings.Contains(out.String(), "streak: 1 day") {
		t.Errorf("done output = %q", out.String())
	}
	if !strings.Contains(out.String(), "Great job! Your streak is now 1 days! 🔥") {
		t.Errorf("expected completion notification, got %q", out.String())
	}

	out.Reset()
	if err := (&HabitListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Stretch") {
		t.Errorf("list output = %q", out.String())
	}

	if err := (&HabitRenameCmd{Habit: "Stretch", Name: "Yoga"}).Run(ctx); err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	out.Reset()
	if err := (&HabitDeleteCmd{Habit: "Yoga"}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(out.String(), "Deleted habit") {
		t.Errorf("delete output = %q", out.String())
	}

	out.Reset()
	if err := (&HabitDeleteCmd{Habit: "Yoga"}).Run(ctx); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
	if !strings.Contains(out.String(), "nothing to delete") {
		t.Errorf("second delete output = %q", out.String())
	}
}

func TestHabitCommands_Errors(t *testing.T) {
	ctx, _, _ := setupTestDB(t)

	if err := (&HabitAddCmd{Name: "   "}).Run(ctx); err == nil {
		t.Error("adding a blank habit should fail")
	}
	if err := (&HabitDoneCmd{Habit: "missing"}).Run(ctx); err == nil {
		t.Error("completing an unknown habit should fail")
	}
}

func TestStreakLabel(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 days"},
		{1, "1 day"},
		{7, "7 days"},
	}
	for _, tt := range tests {
		if got := streakLabel(tt.n); got != tt.want {
			t.Errorf("streakLabel(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
