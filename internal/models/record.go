package models

import (
	"strings"
	"time"

	"github.com/julianstephens/daylog/internal/constants"
)

// DailyRecord is the journal for one calendar day. EntryDate is the natural key.
type DailyRecord struct {
	EntryDate        string    `json:"entry_date"` // YYYY-MM-DD format
	Intentions       []string  `json:"intentions"`
	MorningMood      Mood      `json:"morning_mood"`
	Reflection       string    `json:"reflection"`
	TopWin           string    `json:"top_win"`
	EveningMood      *Mood     `json:"evening_mood,omitempty"`
	EveningCompleted bool      `json:"evening_completed"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewDailyRecord returns a fully populated record for day with every default applied.
func NewDailyRecord(day string) DailyRecord {
	return DailyRecord{
		EntryDate:   day,
		Intentions:  []string{},
		MorningMood: MoodNeutral,
	}
}

// Normalize applies defaults to a record read from storage so callers never
// have to guess about missing fields.
func (r *DailyRecord) Normalize() {
	r.Intentions = CleanIntentions(r.Intentions)

	if mood, ok := ParseMood(string(r.MorningMood)); ok {
		r.MorningMood = mood
	} else {
		r.MorningMood = MoodNeutral
	}

	if r.EveningMood != nil {
		mood, _ := ParseMood(string(*r.EveningMood))
		r.EveningMood = &mood
	}
	if r.EveningCompleted && r.EveningMood == nil {
		mood := MoodNeutral
		r.EveningMood = &mood
	}
}

// ApplyMorning overwrites the morning fields. Evening fields are untouched.
func (r *DailyRecord) ApplyMorning(intentions []string, mood Mood, now time.Time) {
	r.Intentions = CleanIntentions(intentions)
	r.MorningMood = mood
	r.touch(now)
}

// ApplyEvening overwrites the evening fields and marks the evening as completed.
func (r *DailyRecord) ApplyEvening(reflection, topWin string, mood Mood, now time.Time) {
	r.Reflection = strings.TrimSpace(reflection)
	r.TopWin = strings.TrimSpace(topWin)
	r.EveningMood = &mood
	r.EveningCompleted = true
	r.touch(now)
}

func (r *DailyRecord) touch(now time.Time) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
}

// CleanIntentions trims each intention, drops blanks and keeps at most
// constants.MaxIntentions. The result is never nil.
func CleanIntentions(intentions []string) []string {
	cleaned := make([]string, 0, constants.MaxIntentions)
	for _, intention := range intentions {
		intention = strings.TrimSpace(intention)
		if intention == "" {
			continue
		}
		cleaned = append(cleaned, intention)
		if len(cleaned) == constants.MaxIntentions {
			break
		}
	}
	return cleaned
}
