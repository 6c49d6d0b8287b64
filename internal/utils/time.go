package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/models"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

// DateString returns the calendar date (YYYY-MM-DD) of t in t's own location.
func DateString(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// TodayFromSettings returns the current calendar date in the user's configured timezone.
func TodayFromSettings(now time.Time, settings models.Settings) (string, error) {
	loc, err := LoadLocation(settings.Timezone)
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	return DateString(now.In(loc)), nil
}

// PreviousDay returns the calendar date one day before date (YYYY-MM-DD).
// Calendar arithmetic is done in UTC so DST transitions never skip or repeat a day.
func PreviousDay(date string) (string, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.AddDate(0, 0, -1).Format(constants.DateFormat), nil
}

// ParseDueTime parses a reminder time given either as "YYYY-MM-DD HH:MM" or as
// a bare "HH:MM", which is taken to mean that wall-clock time today in loc.
func ParseDueTime(value string, now time.Time, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(constants.DateTimeFormat, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(time.RFC3339, value, loc); err == nil {
		return t, nil
	}
	timeOfDay, err := time.Parse(constants.TimeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected %q or %q", value, constants.DateTimeFormat, constants.TimeFormat)
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), timeOfDay.Hour(), timeOfDay.Minute(), 0, 0, loc), nil
}

// FormatDuration renders seconds as MM:SS for the pomodoro timer.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
