// Package record renders a DailyRecord as a bordered card.
package record

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daylog/internal/models"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

// Status is the one-word completion state of a record.
func Status(r models.DailyRecord) string {
	if r.EveningCompleted {
		return "completed"
	}
	return "open"
}

// Summary is a single line used by list rows.
func Summary(r models.DailyRecord) string {
	line := fmt.Sprintf("%s %s", r.MorningMood.Emoji(), r.MorningMood)
	if r.EveningCompleted && r.EveningMood != nil {
		line += fmt.Sprintf(" → %s %s", r.EveningMood.Emoji(), *r.EveningMood)
	}
	if len(r.Intentions) > 0 {
		line += " | " + strings.Join(r.Intentions, ", ")
	}
	return line
}

// Body renders the card content without the border.
func Body(r models.DailyRecord) string {
	var b strings.Builder

	status := pendingStyle.Render("evening pending")
	if r.EveningCompleted {
		status = doneStyle.Render("✓ completed")
	}
	fmt.Fprintf(&b, "%s  %s\n\n", titleStyle.Render(r.EntryDate), status)

	fmt.Fprintf(&b, "%s %s %s\n", labelStyle.Render("Morning mood:"), r.MorningMood.Emoji(), r.MorningMood)
	b.WriteString(labelStyle.Render("Intentions:") + "\n")
	if len(r.Intentions) == 0 {
		b.WriteString(pendingStyle.Render("  none") + "\n")
	}
	for i, intention := range r.Intentions {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, intention)
	}

	if !r.EveningCompleted {
		return strings.TrimRight(b.String(), "\n")
	}

	b.WriteString("\n")
	if r.EveningMood != nil {
		fmt.Fprintf(&b, "%s %s %s\n", labelStyle.Render("Evening mood:"), r.EveningMood.Emoji(), *r.EveningMood)
	}
	if r.TopWin != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Top win:"), r.TopWin)
	}
	if r.Reflection != "" {
		fmt.Fprintf(&b, "%s\n%s\n", labelStyle.Render("Reflection:"), r.Reflection)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Card renders the record inside a rounded border. A width <= 0 lets the
// content decide.
func Card(r models.DailyRecord, width int) string {
	style := cardStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(Body(r))
}
