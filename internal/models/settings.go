package models

// Settings represents application-wide settings
type Settings struct {
	SoundEnabled         bool   `json:"sound_enabled" yaml:"sound_enabled"`                 // ring the terminal bell on notifications
	NotificationsEnabled bool   `json:"notifications_enabled" yaml:"notifications_enabled"` // whether notifications are delivered at all
	WorkMinutes          int    `json:"work_minutes" yaml:"work_minutes"`                   // Pomodoro work session length
	BreakMinutes         int    `json:"break_minutes" yaml:"break_minutes"`                 // Pomodoro break length
	PollIntervalSec      int    `json:"poll_interval_sec" yaml:"poll_interval_sec"`         // reminder poll cadence for `watch`
	Timezone             string `json:"timezone" yaml:"timezone"`                           // IANA timezone name or "Local"
}
