package constants

const (
	// General Settings
	SettingTimezone         = "timezone"
	SettingTrendWindow      = "trend_window"
	SettingCompletionWindow = "completion_window"
	SettingListLimit        = "list_limit"
	SettingPinHash          = "pin_hash"

	// Default Settings Values
	DefaultTimezone         = "Local" // Use system local timezone by default
	DefaultTrendWindow      = 7
	DefaultCompletionWindow = 7
)
