package board

import (
	"errors"
	"fmt"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/pomodoro"
	"github.com/julianstephens/dashlit/internal/storage"
	"github.com/julianstephens/dashlit/internal/utils"
)

// TimerStatus is the timer state plus the seconds left at the time of reading.
type TimerStatus struct {
	Timer models.Timer
	Left  int
}

func (t TimerStatus) String() string {
	state := "paused"
	if t.Timer.Running {
		state = "running"
	}
	return fmt.Sprintf("%s %s (%s)", t.Timer.Label(), utils.FormatDuration(t.Left), state)
}

func (s *Service) loadTimer(d pomodoro.Durations) (models.Timer, error) {
	var t models.Timer
	err := s.get(constants.KeyTimer, &t)
	if errors.Is(err, storage.ErrNotFound) {
		return pomodoro.New(d), nil
	}
	if err != nil {
		return models.Timer{}, fmt.Errorf("failed to load %s: %w", constants.KeyTimer, err)
	}
	return t, nil
}

// timerOp loads the timer, applies op and persists the result when op reports
// a change.
func (s *Service) timerOp(op func(t models.Timer, settings models.Settings, d pomodoro.Durations) (models.Timer, bool)) (TimerStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.settings()
	d := pomodoro.DurationsFromSettings(settings)
	t, err := s.loadTimer(d)
	if err != nil {
		return TimerStatus{}, err
	}
	t, changed := op(t, settings, d)
	if changed {
		s.save(constants.KeyTimer, t)
	}
	return TimerStatus{Timer: t, Left: pomodoro.Left(t, s.clock())}, nil
}

// Timer returns the current timer state, finishing the session first if its
// time ran out while nothing was watching.
func (s *Service) Timer() (TimerStatus, error) {
	return s.timerOp(s.advance)
}

func (s *Service) StartTimer() (TimerStatus, error) {
	return s.timerOp(func(t models.Timer, settings models.Settings, d pomodoro.Durations) (models.Timer, bool) {
		t, _ = s.advance(t, settings, d)
		now := s.now(settings)
		t, started := pomodoro.Start(t, now)
		if started {
			s.record(models.CategoryTimer, "Timer started", fmt.Sprintf("%s session started - %s", t.Label(), utils.FormatDuration(t.Remaining)), now)
		}
		return t, true
	})
}

func (s *Service) PauseTimer() (TimerStatus, error) {
	return s.timerOp(func(t models.Timer, settings models.Settings, d pomodoro.Durations) (models.Timer, bool) {
		t, advanced := s.advance(t, settings, d)
		now := s.now(settings)
		t, paused := pomodoro.Pause(t, now)
		if paused {
			s.record(models.CategoryTimer, "Timer paused", fmt.Sprintf("%s session paused - %s remaining", t.Label(), utils.FormatDuration(t.Remaining)), now)
		}
		return t, advanced || paused
	})
}

func (s *Service) ResetTimer() (TimerStatus, error) {
	return s.timerOp(func(t models.Timer, settings models.Settings, d pomodoro.Durations) (models.Timer, bool) {
		t = pomodoro.Reset(t, d)
		s.record(models.CategoryTimer, "Timer reset", fmt.Sprintf("%s session reset to %s", t.Label(), utils.FormatDuration(t.Remaining)), s.now(settings))
		return t, true
	})
}

// AdvanceTimer finishes the running session if its time is up.
func (s *Service) AdvanceTimer() (TimerStatus, error) {
	return s.timerOp(s.advance)
}

func (s *Service) advance(t models.Timer, settings models.Settings, d pomodoro.Durations) (models.Timer, bool) {
	now := s.now(settings)
	finished := t.Label()
	t, n := pomodoro.Advance(t, now, d)
	if n == nil {
		return t, false
	}
	s.record(models.CategoryTimer, "Timer finished", finished+" complete", now)
	s.notify(settings, *n)
	return t, true
}
