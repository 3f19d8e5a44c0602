package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: "", wantErr: false},
		{name: "Local returns local", timezone: "Local", wantErr: false},
		{name: "valid timezone UTC", timezone: "UTC", wantErr: false},
		{name: "valid timezone America/New_York", timezone: "America/New_York", wantErr: false},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestInTimezone(t *testing.T) {
	// 03:30 UTC is still the previous evening in New York.
	instant := time.Date(2026, 3, 10, 3, 30, 0, 0, time.UTC)

	got, err := InTimezone(instant, "America/New_York")
	if err != nil {
		t.Fatalf("InTimezone() error = %v", err)
	}
	if got.Format("2006-01-02") != "2026-03-09" {
		t.Errorf("InTimezone() date = %s, want 2026-03-09", got.Format("2006-01-02"))
	}

	if _, err := InTimezone(instant, "Mars/Olympus"); err == nil {
		t.Error("InTimezone() expected error for invalid timezone")
	}
}

func TestGetTodayInTimezone(t *testing.T) {
	got, err := GetTodayInTimezone("UTC")
	if err != nil {
		t.Fatalf("GetTodayInTimezone() error = %v", err)
	}
	if !ValidateDateFormat(got) {
		t.Errorf("GetTodayInTimezone() = %q, not a valid date", got)
	}
}

func TestValidateDateFormat(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2026-03-10", true},
		{"2024-02-29", true},
		{"2026-02-29", false},
		{"2026-3-10", false},
		{"10/03/2026", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidateDateFormat(tt.input); got != tt.want {
				t.Errorf("ValidateDateFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveDate(t *testing.T) {
	got, err := ResolveDate("2026-01-05", "UTC")
	if err != nil || got != "2026-01-05" {
		t.Errorf("ResolveDate() = %q, %v; want 2026-01-05", got, err)
	}

	if _, err := ResolveDate("yesterday", "UTC"); err == nil {
		t.Error("ResolveDate() expected error for malformed date")
	}

	today, err := ResolveDate("", "UTC")
	if err != nil || !ValidateDateFormat(today) {
		t.Errorf("ResolveDate(\"\") = %q, %v; want today's date", today, err)
	}
}

func TestValidateTimezone(t *testing.T) {
	if !ValidateTimezone("Local") || !ValidateTimezone("Europe/Berlin") {
		t.Error("ValidateTimezone() rejected a valid timezone")
	}
	if ValidateTimezone("Nowhere/Special") {
		t.Error("ValidateTimezone() accepted an invalid timezone")
	}
}
