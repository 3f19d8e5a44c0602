package chart

import (
	"strings"
	"testing"

	"github.com/julianstephens/daylog/internal/insights"
	"github.com/julianstephens/daylog/internal/models"
)

func TestTrendEmpty(t *testing.T) {
	if got := Trend(nil); got != "No completed days yet." {
		t.Errorf("Trend(nil) = %q", got)
	}
}

func TestTrend(t *testing.T) {
	points := []insights.TrendPoint{
		{Date: "2026-03-08", MorningScore: 1, EveningScore: 3},
		{Date: "2026-03-09", MorningScore: 5, EveningScore: 5},
	}
	out := Trend(points)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// five score rows, the axis and the date labels
	if len(lines) != 7 {
		t.Fatalf("Trend() has %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Good 5") || !strings.Contains(lines[0], BothMarker) {
		t.Errorf("top row = %q", lines[0])
	}
	if !strings.Contains(lines[2], EveningMarker) {
		t.Errorf("neutral row = %q", lines[2])
	}
	if !strings.Contains(lines[4], MorningMarker) || !strings.Contains(lines[4], "Low 1") {
		t.Errorf("bottom row = %q", lines[4])
	}
	if strings.Contains(lines[1], MorningMarker) || strings.Contains(lines[3], EveningMarker) {
		t.Error("even rows should be empty")
	}
	if !strings.Contains(lines[6], "03-08") || !strings.Contains(lines[6], "03-09") {
		t.Errorf("date row = %q", lines[6])
	}
}

func TestTable(t *testing.T) {
	out := Table([]insights.TrendPoint{{Date: "2026-03-08", MorningScore: 1, EveningScore: 5}})
	if !strings.Contains(out, "2026-03-08") || !strings.Contains(out, "Low (1)") || !strings.Contains(out, "Good (5)") {
		t.Errorf("Table() = %q", out)
	}
}

func TestMoodForScore(t *testing.T) {
	tests := []struct {
		score int
		want  models.Mood
	}{
		{1, models.MoodLow},
		{2, models.MoodLow},
		{3, models.MoodNeutral},
		{4, models.MoodGood},
		{5, models.MoodGood},
	}
	for _, tt := range tests {
		if got := MoodForScore(tt.score); got != tt.want {
			t.Errorf("MoodForScore(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestLegend(t *testing.T) {
	out := Legend()
	for _, marker := range []string{MorningMarker, EveningMarker, BothMarker} {
		if !strings.Contains(out, marker) {
			t.Errorf("Legend() missing %s", marker)
		}
	}
}
