package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/dashlit/internal/backup"
	"github.com/julianstephens/dashlit/internal/board"
	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/logger"
	"github.com/julianstephens/dashlit/internal/notifier"
	"github.com/julianstephens/dashlit/internal/storage"
	"github.com/julianstephens/dashlit/internal/storage/jsonfile"
	"github.com/julianstephens/dashlit/internal/storage/postgres"
	"github.com/julianstephens/dashlit/internal/storage/sqlite"
)

type Context struct {
	Store storage.Provider

	// Tray enables delivery to the dashlit tray app in addition to the terminal.
	Tray bool
	// Clock overrides time.Now; tests set it.
	Clock board.Clock
	// Out and Err default to os.Stdout and os.Stderr.
	Out io.Writer
	Err io.Writer
	// In is read for confirmations and defaults to os.Stdin.
	In io.Reader

	board *board.Service
}

// Stdout returns the writer commands print to.
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Stderr() io.Writer {
	if c.Err == nil {
		return os.Stderr
	}
	return c.Err
}

func (c *Context) Stdin() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

// Now returns the current time from Clock, or time.Now.
func (c *Context) Now() time.Time {
	if c.Clock != nil {
		return c.Clock()
	}
	return time.Now()
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Stdout(), args...)
}

// Board returns the board service over the loaded store, creating it on first use.
func (c *Context) Board() *board.Service {
	if c.board == nil {
		opts := []board.Option{board.WithSink(c.Sink())}
		if c.Clock != nil {
			opts = append(opts, board.WithClock(c.Clock))
		}
		c.board = board.New(c.Store, opts...)
	}
	return c.board
}

// Sink builds the notification sink: the terminal always, plus the tray app
// when enabled. The terminal bell follows the sound setting.
func (c *Context) Sink() notifier.Sink {
	bell := false
	if settings, err := c.Store.GetSettings(); err == nil {
		bell = settings.SoundEnabled
	}
	sinks := notifier.MultiSink{&notifier.ConsoleSink{W: c.Stdout(), Bell: bell}}
	if c.Tray {
		sinks = append(sinks, notifier.BestEffort{Sink: notifier.NewTraySink()})
	}
	return sinks
}

// ReportWarnings prints persistence failures collected by the board service.
// They never fail the command.
func (c *Context) ReportWarnings() {
	if c.board == nil {
		return
	}
	for _, w := range c.board.Warnings() {
		fmt.Fprintf(c.Stderr(), "Warning: %v\n", w)
	}
}

// BackupManager returns a backup manager for file-based stores.
func (c *Context) BackupManager() (*backup.Manager, error) {
	if c.Store.GetConfigPath() == postgres.ConfigPath {
		return nil, backup.ErrUnsupported
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if c.Clock != nil {
		mgr.WithClock(c.Clock)
	}
	return mgr, nil
}

// PerformAutomaticBackup creates a backup and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	mgr, err := c.BackupManager()
	if err != nil {
		return
	}
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// NewProvider picks the storage backend for config: a postgres:// URL, a
// .json file or, by default, a SQLite database file.
func NewProvider(config string) (storage.Provider, error) {
	switch {
	case storage.IsPostgresURL(config):
		if postgres.HasEmbeddedCredentials(config) {
			return nil, fmt.Errorf("%w; store the connection string with 'dashlit keyring set', set %s, or use .pgpass", postgres.ErrEmbeddedCredentials, constants.ConnectionEnvVar)
		}
		return postgres.New(config), nil
	case storage.IsJSONPath(config):
		return jsonfile.NewStore(ExpandPath(config)), nil
	default:
		return sqlite.NewStore(ExpandPath(config)), nil
	}
}

// ConfigDir is where logs are written for the given store configuration.
func ConfigDir(config string) string {
	if storage.IsPostgresURL(config) {
		if dir, err := os.UserConfigDir(); err == nil {
			return filepath.Join(dir, constants.AppName)
		}
		return "."
	}
	return filepath.Dir(ExpandPath(config))
}
