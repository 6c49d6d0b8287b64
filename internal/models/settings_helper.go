package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/dashlit/internal/constants"
)

// DefaultSettings returns the settings written by `dashlit init`.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:         constants.DefaultSoundEnabled,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		WorkMinutes:          constants.DefaultWorkMinutes,
		BreakMinutes:         constants.DefaultBreakMinutes,
		PollIntervalSec:      constants.DefaultPollIntervalSec,
		Timezone:             constants.DefaultTimezone,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.WorkMinutes <= 0 {
		settings.WorkMinutes = constants.DefaultWorkMinutes
	}
	if settings.BreakMinutes <= 0 {
		settings.BreakMinutes = constants.DefaultBreakMinutes
	}
	if settings.PollIntervalSec <= 0 {
		settings.PollIntervalSec = constants.DefaultPollIntervalSec
	}
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingSoundEnabled:         strconv.FormatBool(settings.SoundEnabled),
		constants.SettingNotificationsEnabled: strconv.FormatBool(settings.NotificationsEnabled),
		constants.SettingWorkMinutes:          strconv.Itoa(settings.WorkMinutes),
		constants.SettingBreakMinutes:         strconv.Itoa(settings.BreakMinutes),
		constants.SettingPollIntervalSec:      strconv.Itoa(settings.PollIntervalSec),
		constants.SettingTimezone:             settings.Timezone,
	}
}

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingSoundEnabled:
			settings.SoundEnabled = value == "true"
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingWorkMinutes:
			if _, err := fmt.Sscanf(value, "%d", &settings.WorkMinutes); err != nil {
				return Settings{}, fmt.Errorf("parsing work_minutes: %w", err)
			}
		case constants.SettingBreakMinutes:
			if _, err := fmt.Sscanf(value, "%d", &settings.BreakMinutes); err != nil {
				return Settings{}, fmt.Errorf("parsing break_minutes: %w", err)
			}
		case constants.SettingPollIntervalSec:
			if _, err := fmt.Sscanf(value, "%d", &settings.PollIntervalSec); err != nil {
				return Settings{}, fmt.Errorf("parsing poll_interval_sec: %w", err)
			}
		case constants.SettingTimezone:
			settings.Timezone = value
		}
	}
	return settings, nil
}
