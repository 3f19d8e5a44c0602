package models

// Settings represents application-wide settings
type Settings struct {
	Timezone         string `json:"timezone"`          // IANA timezone name (e.g. "America/New_York", or "Local" for system timezone)
	TrendWindow      int    `json:"trend_window"`      // number of completed days plotted in the mood trend
	CompletionWindow int    `json:"completion_window"` // calendar days counted for recent completion
	ListLimit        int    `json:"list_limit"`        // default number of rows in history/decision/entry lists
	PinHash          string `json:"pin_hash,omitempty"`
}

// HasPin reports whether a PIN gate is configured.
func (s Settings) HasPin() bool {
	return s.PinHash != ""
}
