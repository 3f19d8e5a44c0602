package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/tui/components/record"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateToday:
		content = m.viewToday()
	case constants.StateHistory:
		content = docStyle.Render(m.historyModel.View())
	case constants.StateTrend:
		content = docStyle.Render(m.trendModel.View())
	case constants.StateDecisions:
		content = docStyle.Render(m.decisionsModel.View())
	case constants.StateEntries:
		content = docStyle.Render(m.entriesModel.View())
	case constants.StateRecordDetail:
		content = docStyle.Render(m.detail.View())
	case constants.StateMorningForm, constants.StateEveningForm, constants.StateDecisionForm, constants.StateEntryForm:
		content = docStyle.Render(m.form.View())
	}

	parts := []string{m.viewTabs(), content}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	parts = append(parts, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.activeTab() == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// activeTab maps overlay states back to the tab they were opened from.
func (m Model) activeTab() constants.SessionState {
	if m.state < constants.SessionState(len(tabTitles)) {
		return m.state
	}
	return m.previousState
}

func (m Model) viewToday() string {
	s := m.summary
	stats := fmt.Sprintf("%s   %s   %s",
		statStyle.Render(fmt.Sprintf("🔥 Streak %d", s.Streaks.Current)),
		statStyle.Render(fmt.Sprintf("Longest %d", s.Streaks.Longest)),
		statStyle.Render(fmt.Sprintf("Last %d days %d/%d", s.CompletionWindow, s.RecentCompletion, s.CompletionWindow)),
	)

	hint := "Press 'm' for the morning check-in."
	switch {
	case m.today.EveningCompleted:
		hint = "Day complete. Press 'e' to edit the evening."
	case !m.today.CreatedAt.IsZero():
		hint = "Press 'e' for the evening reflection."
	}

	width := 0
	if m.width > 8 {
		width = m.width - 8
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		stats,
		"",
		record.Card(m.today, width),
		"",
		hintStyle.Render(hint),
	))
}
