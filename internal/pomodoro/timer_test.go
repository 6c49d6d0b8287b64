package pomodoro

import (
	"testing"
	"time"

	"github.com/julianstephens/dashlit/internal/models"
)

var (
	start = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	std   = Durations{Work: 25 * time.Minute, Break: 5 * time.Minute}
)

func TestNew(t *testing.T) {
	tm := New(std)
	if tm.Mode != models.TimerModeWork || tm.Remaining != 1500 || tm.Running {
		t.Errorf("New() = %+v", tm)
	}
}

func TestDurationsFromSettings(t *testing.T) {
	d := DurationsFromSettings(models.Settings{WorkMinutes: 50})
	if d.Work != 50*time.Minute {
		t.Errorf("Work = %v", d.Work)
	}
	if d.Break != 5*time.Minute {
		t.Errorf("Break = %v, want default", d.Break)
	}
}

func TestStartPause(t *testing.T) {
	tm := New(std)

	tm, ok := Start(tm, start)
	if !ok || !tm.Running {
		t.Fatalf("Start() = %+v, %v", tm, ok)
	}
	if _, ok := Start(tm, start.Add(time.Minute)); ok {
		t.Error("Start() on a running timer reported a change")
	}

	if got := Left(tm, start.Add(90*time.Second)); got != 1410 {
		t.Errorf("Left() = %d, want 1410", got)
	}

	tm, ok = Pause(tm, start.Add(90*time.Second))
	if !ok || tm.Running || tm.StartedAt != nil || tm.Remaining != 1410 {
		t.Errorf("Pause() = %+v, %v", tm, ok)
	}
	if _, ok := Pause(tm, start.Add(time.Hour)); ok {
		t.Error("Pause() on a paused timer reported a change")
	}
	if got := Left(tm, start.Add(time.Hour)); got != 1410 {
		t.Errorf("paused Left() = %d, want 1410", got)
	}
}

func TestReset(t *testing.T) {
	tm := models.Timer{Mode: models.TimerModeBreak, Remaining: 12, Running: true, StartedAt: &start}

	got := Reset(tm, std)
	if got.Running || got.StartedAt != nil || got.Remaining != 300 || got.Mode != models.TimerModeBreak {
		t.Errorf("Reset() = %+v", got)
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name      string
		timer     models.Timer
		at        time.Time
		wantMode  models.TimerMode
		wantLeft  int
		wantText  string
		wantFired bool
	}{
		{
			name:     "paused timer untouched",
			timer:    models.Timer{Mode: models.TimerModeWork, Remaining: 0},
			at:       start,
			wantMode: models.TimerModeWork,
			wantLeft: 0,
		},
		{
			name:     "running with time left",
			timer:    models.Timer{Mode: models.TimerModeWork, Remaining: 60, Running: true, StartedAt: &start},
			at:       start.Add(30 * time.Second),
			wantMode: models.TimerModeWork,
			wantLeft: 30,
		},
		{
			name:      "work session finishes",
			timer:     models.Timer{Mode: models.TimerModeWork, Remaining: 60, Running: true, StartedAt: &start},
			at:        start.Add(61 * time.Second),
			wantMode:  models.TimerModeBreak,
			wantLeft:  300,
			wantText:  "Work session complete! Take a break.",
			wantFired: true,
		},
		{
			name:      "break finishes",
			timer:     models.Timer{Mode: models.TimerModeBreak, Remaining: 300, Running: true, StartedAt: &start},
			at:        start.Add(5 * time.Minute),
			wantMode:  models.TimerModeWork,
			wantLeft:  1500,
			wantText:  "Break time is over! Ready for work?",
			wantFired: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := Advance(tt.timer, tt.at, std)

			if (n != nil) != tt.wantFired {
				t.Fatalf("notification = %+v, wantFired %v", n, tt.wantFired)
			}
			if got.Mode != tt.wantMode {
				t.Errorf("Mode = %s, want %s", got.Mode, tt.wantMode)
			}
			if left := Left(got, tt.at); left != tt.wantLeft {
				t.Errorf("Left() = %d, want %d", left, tt.wantLeft)
			}
			if tt.wantFired {
				if got.Running {
					t.Error("finished timer still running")
				}
				if n.Kind != models.NotificationTimerFinished || n.Text != tt.wantText {
					t.Errorf("notification = %+v", n)
				}
			}
		})
	}
}
