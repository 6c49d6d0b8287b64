package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/cli/backups"
	"github.com/julianstephens/dashlit/internal/cli/habits"
	"github.com/julianstephens/dashlit/internal/cli/logs"
	"github.com/julianstephens/dashlit/internal/cli/notes"
	"github.com/julianstephens/dashlit/internal/cli/reminders"
	"github.com/julianstephens/dashlit/internal/cli/settings"
	"github.com/julianstephens/dashlit/internal/cli/system"
	"github.com/julianstephens/dashlit/internal/cli/timer"
	"github.com/julianstephens/dashlit/internal/cli/todos"
	"github.com/julianstephens/dashlit/internal/constants"
	apperrors "github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/keyring"
	"github.com/julianstephens/dashlit/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite path, .json file or PostgreSQL URL. PostgreSQL credentials must NOT be embedded; use the OS keyring, the environment or .pgpass." type:"string" default:"${default_config}" env:"DASHLIT_DB_CONNECTION"`
	Debug   bool   `help:"Enable debug logging to stderr."`
	Notify  bool   `help:"Also deliver notifications to the dashlit tray app." negatable:""`

	Init     system.InitCmd        `cmd:"" help:"Initialize dashlit storage."`
	Habit    habits.HabitCmd       `cmd:"" help:"Track daily habits and streaks."`
	Reminder reminders.ReminderCmd `cmd:"" help:"Schedule one-shot reminders."`
	Todo     todos.TodoCmd         `cmd:"" help:"Manage the todo list."`
	Note     notes.NoteCmd         `cmd:"" help:"Write Markdown notes."`
	Timer    timer.TimerCmd        `cmd:"" help:"Control the pomodoro timer."`
	Log      logs.LogCmd           `cmd:"" help:"Browse and export the activity log."`
	Settings settings.SettingsCmd  `cmd:"" help:"Manage application settings."`
	Backup   backups.BackupCmd     `cmd:"" help:"Manage database backups."`
	Keyring  system.KeyringCmd     `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Export   system.ExportCmd      `cmd:"" help:"Export the whole board as JSON or YAML."`
	Doctor   system.DoctorCmd      `cmd:"" help:"Run health checks and diagnostics."`
	Watch    system.WatchCmd       `cmd:"" help:"Poll reminders and run the timer until interrupted."`
	Inspect  system.DebugCmd       `cmd:"" help:"Inspect raw storage for troubleshooting."`
	Notifier system.NotifyCmd      `cmd:"" name:"notify" hidden:"" help:"Send a one-off notification."`
}

// commandsWithoutLoad manage storage themselves or never touch it.
var commandsWithoutLoad = map[string]bool{
	"init":    true,
	"keyring": true,
	"doctor":  true,
}

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal dashboard for habits, reminders, todos, notes and a pomodoro timer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	config := resolveConfig(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: cli.ConfigDir(config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store, err := cli.NewProvider(config)
	if err != nil {
		apperrors.Fatal(err)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store: store,
		Tray:  CLI.Notify,
	}

	command := strings.Fields(ctx.Command())
	if len(command) > 0 && !commandsWithoutLoad[command[0]] {
		if err := store.Load(); err != nil {
			store.Close()
			apperrors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// resolveConfig falls back to a connection string stored in the OS keyring
// when --config was left at its default.
func resolveConfig(config string) string {
	if config != constants.DefaultConfigPath {
		return config
	}
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			logger.Debug("Keyring lookup skipped", "error", err)
		}
		return config
	}
	return connStr
}
