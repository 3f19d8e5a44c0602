package models

import (
	"fmt"

	"github.com/julianstephens/daylog/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingTrendWindow:
			if _, err := fmt.Sscanf(value, "%d", &settings.TrendWindow); err != nil {
				return Settings{}, fmt.Errorf("parsing trend_window: %w", err)
			}
		case constants.SettingCompletionWindow:
			if _, err := fmt.Sscanf(value, "%d", &settings.CompletionWindow); err != nil {
				return Settings{}, fmt.Errorf("parsing completion_window: %w", err)
			}
		case constants.SettingListLimit:
			if _, err := fmt.Sscanf(value, "%d", &settings.ListLimit); err != nil {
				return Settings{}, fmt.Errorf("parsing list_limit: %w", err)
			}
		case constants.SettingPinHash:
			settings.PinHash = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingTimezone:         settings.Timezone,
		constants.SettingTrendWindow:      fmt.Sprintf("%d", settings.TrendWindow),
		constants.SettingCompletionWindow: fmt.Sprintf("%d", settings.CompletionWindow),
		constants.SettingListLimit:        fmt.Sprintf("%d", settings.ListLimit),
		constants.SettingPinHash:          settings.PinHash,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.TrendWindow <= 0 {
		settings.TrendWindow = constants.DefaultTrendWindow
	}
	if settings.CompletionWindow <= 0 {
		settings.CompletionWindow = constants.DefaultCompletionWindow
	}
	settings.ListLimit = constants.ClampListLimit(settings.ListLimit)
}

// DefaultSettings returns a Settings value with every default applied.
func DefaultSettings() Settings {
	s := Settings{}
	ApplyDefaultSettings(&s)
	return s
}
