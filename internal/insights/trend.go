package insights

import (
	"sort"
	"time"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/models"
)

// DefaultTrendWindow is the number of completed days plotted by default.
const DefaultTrendWindow = 7

// TrendPoint is one plotted day of paired mood scores.
type TrendPoint struct {
	Date         string `json:"date"`
	MorningScore int    `json:"morning_score"`
	EveningScore int    `json:"evening_score"`
}

// ComputeMoodTrend returns the last windowSize completed days in ascending
// date order. Days without a completed evening are skipped, not padded.
func ComputeMoodTrend(records []models.DailyRecord, windowSize int) []TrendPoint {
	if windowSize <= 0 {
		return []TrendPoint{}
	}

	byDay := make(map[time.Time]TrendPoint, len(records))
	for _, r := range records {
		if !r.EveningCompleted {
			continue
		}
		day, ok := parseDay(r.EntryDate)
		if !ok {
			continue
		}

		evening := models.MoodNeutral
		if r.EveningMood != nil {
			evening = *r.EveningMood
		}
		byDay[day] = TrendPoint{
			Date:         day.Format(constants.DateFormat),
			MorningScore: r.MorningMood.Score(),
			EveningScore: evening.Score(),
		}
	}

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	if len(days) > windowSize {
		days = days[len(days)-windowSize:]
	}

	points := make([]TrendPoint, 0, len(days))
	for _, day := range days {
		points = append(points, byDay[day])
	}
	return points
}

// Summary bundles everything a dashboard renders.
type Summary struct {
	Today            string       `json:"today"`
	Streaks          Streaks      `json:"streaks"`
	RecentCompletion int          `json:"recent_completion"`
	CompletionWindow int          `json:"completion_window"`
	Trend            []TrendPoint `json:"trend"`
}

// Summarize runs every computation against the same snapshot.
func Summarize(records []models.DailyRecord, today time.Time, completionWindow, trendWindow int) Summary {
	return Summary{
		Today:            dateOnly(today).Format(constants.DateFormat),
		Streaks:          ComputeStreaks(records, today),
		RecentCompletion: ComputeRecentCompletion(records, today, completionWindow),
		CompletionWindow: completionWindow,
		Trend:            ComputeMoodTrend(records, trendWindow),
	}
}
