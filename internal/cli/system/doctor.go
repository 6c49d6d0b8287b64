package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/dashlit/internal/backup"
	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/keyring"
	"github.com/julianstephens/dashlit/internal/migration"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/storage"
	"github.com/julianstephens/dashlit/internal/utils"
)

// migrationReporter is implemented by the SQL-backed stores.
type migrationReporter interface {
	MigrationStatus() (migration.Status, error)
}

type DoctorCmd struct{}

type check struct {
	name string
	// requiresStore skips the check when storage could not be loaded.
	requiresStore bool
	// warnOnly reports a failure as a warning without failing the command.
	warnOnly bool
	run      func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Storage reachable", run: checkStoreReachable},
	{name: "Migrations complete", requiresStore: true, run: checkMigrationsComplete},
	{name: "Settings valid", requiresStore: true, run: checkSettings},
	{name: "Board data readable", requiresStore: true, run: checkCollections},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Keyring", warnOnly: true, run: checkKeyring},
	{name: "Clock", run: checkClock},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	storeReachable := true

	for _, c := range checks {
		if c.requiresStore && !storeReachable {
			ctx.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			if c.name == checks[0].name {
				storeReachable = false
			}
		}
	}

	ctx.Println()
	if hasError {
		return errors.New("diagnostics found problems")
	}
	ctx.Println("All checks passed.")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	return ctx.Store.Load()
}

func checkMigrationsComplete(ctx *cli.Context) error {
	reporter, ok := ctx.Store.(migrationReporter)
	if !ok {
		return nil
	}
	status, err := reporter.MigrationStatus()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if status.Current > status.Latest {
		return fmt.Errorf("database schema version %d is newer than supported version %d", status.Current, status.Latest)
	}
	if n := status.Pending(); n > 0 {
		return fmt.Errorf("%d pending migration(s) (current %d, latest %d)", n, status.Current, status.Latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)
	if _, err := utils.TodayFromSettings(ctx.Now(), settings); err != nil {
		return err
	}
	if settings.WorkMinutes < 1 || settings.BreakMinutes < 1 {
		return fmt.Errorf("timer durations must be positive (work %d, break %d)", settings.WorkMinutes, settings.BreakMinutes)
	}
	return nil
}

func checkCollections(ctx *cli.Context) error {
	keys := []string{
		constants.KeyHabits,
		constants.KeyReminders,
		constants.KeyTodos,
		constants.KeyNotes,
		constants.KeyActivity,
	}
	for _, key := range keys {
		var raw []map[string]any
		if err := ctx.Store.GetCollection(key, &raw); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("collection %q: %w", key, err)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr, err := ctx.BackupManager()
	if errors.Is(err, backup.ErrUnsupported) {
		return errors.New("backups are not managed by dashlit for PostgreSQL; use pg_dump")
	}
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return errors.New("no backups found. Run 'dashlit backup' to create one")
	}
	return nil
}

func checkKeyring(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return errors.New("OS keyring is not available; PostgreSQL credentials must come from the environment or .pgpass")
	}
	return nil
}

func checkClock(ctx *cli.Context) error {
	now := ctx.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
