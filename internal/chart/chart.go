// Package chart draws the mood trend for terminals.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daylog/internal/insights"
	"github.com/julianstephens/daylog/internal/models"
)

const (
	MorningMarker = "●"
	EveningMarker = "◆"
	BothMarker    = "◉"

	columnWidth = 7
	maxScore    = 5
	minScore    = 1
)

var (
	axisStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	morningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	eveningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	bothStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// Trend renders a point chart with score rows 5..1 and one column per day.
func Trend(points []insights.TrendPoint) string {
	if len(points) == 0 {
		return "No completed days yet."
	}

	var b strings.Builder
	for score := maxScore; score >= minScore; score-- {
		b.WriteString(axisStyle.Render(rowLabel(score)))
		b.WriteString(axisStyle.Render(" │"))
		for _, p := range points {
			b.WriteString(cell(p, score))
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(strings.Repeat(" ", 9) + "└" + strings.Repeat("─", columnWidth*len(points))))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", 10))
	for _, p := range points {
		b.WriteString(axisStyle.Render(center(shortDate(p.Date))))
	}
	b.WriteString("\n")
	return b.String()
}

// Legend explains the markers used by Trend.
func Legend() string {
	return fmt.Sprintf("%s morning  %s evening  %s both",
		morningStyle.Render(MorningMarker),
		eveningStyle.Render(EveningMarker),
		bothStyle.Render(BothMarker),
	)
}

// Table lists each point with mood names and scores.
func Table(points []insights.TrendPoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n",
		headerStyle.Render(fmt.Sprintf("%-10s", "Date")),
		headerStyle.Render(fmt.Sprintf("%-12s", "Morning")),
		headerStyle.Render(fmt.Sprintf("%-12s", "Evening")),
	)
	for _, p := range points {
		fmt.Fprintf(&b, "%-10s  %-12s  %-12s\n", p.Date, scoreLabel(p.MorningScore), scoreLabel(p.EveningScore))
	}
	return b.String()
}

// MoodForScore maps a chart score back onto the mood scale.
func MoodForScore(score int) models.Mood {
	switch {
	case score <= 2:
		return models.MoodLow
	case score >= 4:
		return models.MoodGood
	default:
		return models.MoodNeutral
	}
}

func cell(p insights.TrendPoint, score int) string {
	morning := p.MorningScore == score
	evening := p.EveningScore == score
	switch {
	case morning && evening:
		return center(bothStyle.Render(BothMarker))
	case morning:
		return center(morningStyle.Render(MorningMarker))
	case evening:
		return center(eveningStyle.Render(EveningMarker))
	default:
		return strings.Repeat(" ", columnWidth)
	}
}

func center(s string) string {
	return lipgloss.PlaceHorizontal(columnWidth, lipgloss.Center, s)
}

func rowLabel(score int) string {
	switch score {
	case maxScore, 3, minScore:
		return fmt.Sprintf("%7s %d", MoodForScore(score), score)
	default:
		return fmt.Sprintf("%7s %d", "", score)
	}
}

func scoreLabel(score int) string {
	m := MoodForScore(score)
	return fmt.Sprintf("%s %s (%d)", m.Emoji(), m, score)
}

// shortDate trims YYYY-MM-DD to MM-DD.
func shortDate(date string) string {
	if len(date) == len("2006-01-02") {
		return date[5:]
	}
	return date
}
