package models

import "testing"

func TestParseMood(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Mood
		wantOK bool
	}{
		{"lowercase", "good", MoodGood, true},
		{"mixed case with spaces", "  Low ", MoodLow, true},
		{"emoji label", "😐 Neutral", MoodNeutral, true},
		{"bare emoji", "🙂", MoodGood, true},
		{"unknown", "ecstatic", MoodNeutral, false},
		{"empty", "", MoodNeutral, false},
		{"negated phrase", "not good", MoodNeutral, false},
		{"sentence containing a mood", "feeling low today", MoodNeutral, false},
		{"mismatched emoji", "😞 good", MoodNeutral, false},
		{"two moods", "good low", MoodNeutral, false},
		{"emoji without space", "🙂good", MoodGood, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMood(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseMood(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMood_Score(t *testing.T) {
	tests := []struct {
		mood Mood
		want int
	}{
		{MoodLow, 1},
		{MoodNeutral, 3},
		{MoodGood, 5},
		{Mood("Good"), 5},
		{Mood("meh"), 3},
		{Mood(""), 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.mood), func(t *testing.T) {
			if got := tt.mood.Score(); got != tt.want {
				t.Errorf("Mood(%q).Score() = %d, want %d", tt.mood, got, tt.want)
			}
		})
	}
}

func TestMood_String(t *testing.T) {
	if got := MoodGood.String(); got != "Good" {
		t.Errorf("MoodGood.String() = %q, want Good", got)
	}
	if got := Mood("garbage").String(); got != "Neutral" {
		t.Errorf("unknown mood String() = %q, want Neutral", got)
	}
}
