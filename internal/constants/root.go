package constants

import "time"

const (
	AppName            = "dashlit"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/dashlit/dashlit.db"
	Version            = "v0.3.0"

	// ConnectionEnvVar overrides --config when set (also read from .env)
	ConnectionEnvVar = "DASHLIT_DB_CONNECTION"

	// DateFormat is the calendar date format used for habit completion days (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the wall-clock format accepted for reminder times (HH:MM)
	TimeFormat = "15:04"

	// DateTimeFormat is the combined format accepted by `reminder add --at`
	DateTimeFormat = "2006-01-02 15:04"

	// Collection keys in the key-value store
	KeyHabits    = "habits"
	KeyReminders = "reminders"
	KeyTodos     = "todos"
	KeyNotes     = "notes"
	KeyTimer     = "timer"
	KeyActivity  = "activityLogs"
	KeySettings  = "settings"

	// Backup constants
	MaxBackups          = 14
	BackupDirName       = "backups"
	BackupFilePrefix    = "dashlit-"
	BackupFileSuffix    = ".db"
	LogBackupPrefix     = "logs-backup-"
	LogBackupSuffix     = ".txt"
	LogBackupRetainDays = 7

	// Activity log constants
	MaxActivityEntries = 1000
	LogExportPrefix    = "dashlit-logs-"

	// Notes
	NotePreviewLen   = 50
	NoteEmptyPreview = "No content yet..."

	// Notify constants
	NotifierLockfileName   = "dashlit-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.dashlit"

	// Watch loop cadence
	LogAutosaveInterval = 10 * time.Minute
	TimerTickInterval   = time.Second
)
