package constants

const (
	// Setting names accepted by `dashlit settings`
	SettingSoundEnabled         = "sound_enabled"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingWorkMinutes          = "work_minutes"
	SettingBreakMinutes         = "break_minutes"
	SettingPollIntervalSec      = "poll_interval_sec"
	SettingTimezone             = "timezone"

	// Default Settings Values
	DefaultSoundEnabled         = true
	DefaultNotificationsEnabled = true
	DefaultWorkMinutes          = 25
	DefaultBreakMinutes         = 5
	DefaultPollIntervalSec      = 60
	DefaultTimezone             = "Local" // Use system local timezone by default
)
