package insights

import (
	"sort"
	"time"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/models"
)

// DefaultWindowDays is the calendar window used for recent completion.
const DefaultWindowDays = 7

// Streaks holds the current and longest run of consecutive completed days.
type Streaks struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// ComputeStreaks scans the completed days once in date order. A gap of any
// size resets the run, and the run only counts as current when it ends today.
func ComputeStreaks(records []models.DailyRecord, today time.Time) Streaks {
	days := completedDays(records)
	if len(days) == 0 {
		return Streaks{}
	}

	run, longest := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	current := 0
	if days[len(days)-1].Equal(dateOnly(today)) {
		current = run
	}

	return Streaks{Current: current, Longest: longest}
}

// ComputeRecentCompletion counts distinct completed days within the
// windowDays calendar days ending on today, inclusive.
func ComputeRecentCompletion(records []models.DailyRecord, today time.Time, windowDays int) int {
	if windowDays <= 0 {
		return 0
	}

	end := dateOnly(today)
	start := end.AddDate(0, 0, -(windowDays - 1))

	count := 0
	for _, day := range completedDays(records) {
		if day.Before(start) || day.After(end) {
			continue
		}
		count++
	}
	return count
}

// completedDays returns the distinct, parseable dates of completed records in
// ascending order.
func completedDays(records []models.DailyRecord) []time.Time {
	seen := make(map[time.Time]bool, len(records))
	days := make([]time.Time, 0, len(records))

	for _, r := range records {
		if !r.EveningCompleted {
			continue
		}
		day, ok := parseDay(r.EntryDate)
		if !ok || seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// dateOnly drops the clock and zone so dates compare as calendar days.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
