// Package watch runs the long-lived `dashlit watch` loop: periodic reminder
// polls, timer ticks and activity-log autosaves.
package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/julianstephens/dashlit/internal/board"
	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/logger"
	"github.com/julianstephens/dashlit/internal/models"
)

// Board is the part of board.Service the loop drives.
type Board interface {
	PollReminders() ([]models.Reminder, error)
	AdvanceTimer() (board.TimerStatus, error)
	AutosaveLogs(saver board.LogSaver) (string, error)
	Warnings() []error
}

// Intervals sets the cadence of each job.
type Intervals struct {
	Poll     time.Duration
	Timer    time.Duration
	Autosave time.Duration
}

// IntervalsFromSettings uses the configured poll interval and the fixed timer
// and autosave cadences.
func IntervalsFromSettings(s models.Settings) Intervals {
	poll := time.Duration(s.PollIntervalSec) * time.Second
	if poll <= 0 {
		poll = time.Duration(constants.DefaultPollIntervalSec) * time.Second
	}
	return Intervals{
		Poll:     poll,
		Timer:    constants.TimerTickInterval,
		Autosave: constants.LogAutosaveInterval,
	}
}

type job struct {
	every time.Duration
	fn    func()
}

type Runner struct {
	board     Board
	saver     board.LogSaver
	intervals Intervals
}

// New creates a runner. saver may be nil to disable log autosaves.
func New(b Board, saver board.LogSaver, intervals Intervals) *Runner {
	return &Runner{board: b, saver: saver, intervals: intervals}
}

// Run polls once immediately, then schedules the jobs and blocks until ctx is
// cancelled. Logs are autosaved one last time before it returns.
func (r *Runner) Run(ctx context.Context) error {
	r.pollReminders()
	r.advanceTimer()

	c := cron.New(
		cron.WithLogger(cronLogger{}),
		cron.WithChain(cron.Recover(cronLogger{}), cron.SkipIfStillRunning(cronLogger{})),
	)
	jobs := []job{
		{r.intervals.Poll, r.pollReminders},
		{r.intervals.Timer, r.advanceTimer},
	}
	if r.saver != nil {
		jobs = append(jobs, job{r.intervals.Autosave, r.autosave})
	}
	for _, job := range jobs {
		if _, err := c.AddFunc(fmt.Sprintf("@every %s", job.every), job.fn); err != nil {
			return fmt.Errorf("failed to schedule job every %s: %w", job.every, err)
		}
	}

	logger.Info("Watch loop started", "poll_interval", r.intervals.Poll)
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()

	if r.saver != nil {
		r.autosave()
	}
	logger.Info("Watch loop stopped")
	return nil
}

func (r *Runner) pollReminders() {
	if _, err := r.board.PollReminders(); err != nil {
		logger.Error("Reminder poll failed", "error", err)
	}
	r.drainWarnings()
}

func (r *Runner) advanceTimer() {
	if _, err := r.board.AdvanceTimer(); err != nil {
		logger.Error("Timer tick failed", "error", err)
	}
	r.drainWarnings()
}

func (r *Runner) autosave() {
	path, err := r.board.AutosaveLogs(r.saver)
	if err != nil {
		logger.Error("Log autosave failed", "error", err)
		return
	}
	logger.Debug("Activity log autosaved", "path", path)
}

func (r *Runner) drainWarnings() {
	for _, w := range r.board.Warnings() {
		logger.Warn("Persistence failure", "error", w)
	}
}

// cronLogger routes cron's own logging through the dashlit logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Error("cron: "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
