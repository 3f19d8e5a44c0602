package trend

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daylog/internal/chart"
	"github.com/julianstephens/daylog/internal/insights"
)

var statStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	Bold(true)

type Model struct {
	viewport viewport.Model
	summary  *insights.Summary
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.summary == nil {
		return "Loading trend..."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetSummary(s insights.Summary) {
	m.summary = &s
	m.Render()
}

// Render writes the chart, legend and table into the viewport.
func (m *Model) Render() {
	if m.summary == nil {
		return
	}
	s := m.summary

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n\n",
		statStyle.Render(fmt.Sprintf("Current streak: %d", s.Streaks.Current)),
		statStyle.Render(fmt.Sprintf("Longest: %d", s.Streaks.Longest)),
		statStyle.Render(fmt.Sprintf("Last %d days: %d/%d", s.CompletionWindow, s.RecentCompletion, s.CompletionWindow)),
	)
	b.WriteString(chart.Trend(s.Trend))
	if len(s.Trend) > 0 {
		b.WriteString("\n" + chart.Legend() + "\n\n")
		b.WriteString(chart.Table(s.Trend))
	}
	m.viewport.SetContent(b.String())
}
