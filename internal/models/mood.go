package models

import "strings"

// Mood is a point on the fixed three-step ordinal mood scale.
type Mood string

const (
	MoodLow     Mood = "low"
	MoodNeutral Mood = "neutral"
	MoodGood    Mood = "good"
)

// Moods lists the scale from lowest to highest.
var Moods = []Mood{MoodLow, MoodNeutral, MoodGood}

var moodEmoji = map[Mood]string{
	MoodLow:     "😞",
	MoodNeutral: "😐",
	MoodGood:    "🙂",
}

// ParseMood reads a whole mood label case-insensitively. A label may carry
// its own emoji prefix ("🙂 Good") or be the bare emoji. Anything else,
// including phrases such as "not good", yields MoodNeutral and false.
func ParseMood(s string) (Mood, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return MoodNeutral, false
	}
	for _, m := range Moods {
		emoji := moodEmoji[m]
		if s == emoji || strings.TrimSpace(strings.TrimPrefix(s, emoji)) == string(m) {
			return m, true
		}
	}
	return MoodNeutral, false
}

// IsValid reports whether m is one of the three known moods.
func (m Mood) IsValid() bool {
	_, ok := ParseMood(string(m))
	return ok
}

// Score maps the mood onto the chart scale: Low=1, Neutral=3, Good=5.
// Anything unrecognised scores as Neutral so legacy rows still plot.
func (m Mood) Score() int {
	parsed, _ := ParseMood(string(m))
	switch parsed {
	case MoodLow:
		return 1
	case MoodGood:
		return 5
	default:
		return 3
	}
}

func (m Mood) String() string {
	parsed, ok := ParseMood(string(m))
	if !ok {
		return "Neutral"
	}
	switch parsed {
	case MoodLow:
		return "Low"
	case MoodGood:
		return "Good"
	default:
		return "Neutral"
	}
}

func (m Mood) Emoji() string {
	parsed, _ := ParseMood(string(m))
	return moodEmoji[parsed]
}
