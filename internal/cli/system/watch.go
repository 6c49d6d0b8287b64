package system

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/dashlit/internal/board"
	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/logger"
	"github.com/julianstephens/dashlit/internal/watch"
)

// WatchCmd runs the reminder poller, the timer ticker and the log autosave
// in the foreground until interrupted.
type WatchCmd struct{}

func (c *WatchCmd) Run(ctx *cli.Context) error {
	appCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx.PerformAutomaticBackup()

	b := ctx.Board()
	var saver board.LogSaver
	if mgr, err := ctx.BackupManager(); err == nil {
		saver = mgr
	} else {
		logger.Info("Log autosave disabled", "reason", err)
	}

	intervals := watch.IntervalsFromSettings(b.Settings())
	ctx.Printf("Watching board (reminders every %s). Press Ctrl+C to stop.\n", intervals.Poll)

	err := watch.New(b, saver, intervals).Run(appCtx)
	ctx.ReportWarnings()
	ctx.Println("Stopped.")
	return err
}
