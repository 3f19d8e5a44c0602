// Package tui is the interactive dashboard started by `daylog tui`.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/forms"
	"github.com/julianstephens/daylog/internal/insights"
	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/logger"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/tui/components/decisions"
	"github.com/julianstephens/daylog/internal/tui/components/entries"
	"github.com/julianstephens/daylog/internal/tui/components/history"
	"github.com/julianstephens/daylog/internal/tui/components/trend"
)

var tabTitles = []string{"Today", "History", "Trend", "Decisions", "Entries"}

type Model struct {
	svc            *journal.Service
	state          constants.SessionState
	previousState  constants.SessionState
	keys           KeyMap
	help           help.Model
	todayDate      string
	today          models.DailyRecord
	summary        insights.Summary
	historyModel   history.Model
	trendModel     trend.Model
	decisionsModel decisions.Model
	entriesModel   entries.Model
	detail         viewport.Model
	form           *huh.Form
	morningForm    *forms.MorningFormModel
	eveningForm    *forms.EveningFormModel
	decisionForm   *forms.DecisionFormModel
	entryForm      *forms.EntryFormModel
	status         string
	quitting       bool
	width          int
	height         int
}

func NewModel(svc *journal.Service) Model {
	m := Model{
		svc:            svc,
		state:          constants.StateToday,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		historyModel:   history.New(nil, 0, 0),
		trendModel:     trend.New(0, 0),
		decisionsModel: decisions.New(nil, 0, 0),
		entriesModel:   entries.New(nil, 0, 0),
		detail:         viewport.New(0, 0),
	}
	m.refresh()
	return m
}

// refresh reloads everything shown on the tabs from the store.
func (m *Model) refresh() {
	day, err := m.svc.Today()
	if err != nil {
		m.fail("load today", err)
		return
	}
	m.todayDate = day

	r, _, err := m.svc.Record(day)
	if err != nil {
		m.fail("load today", err)
		return
	}
	m.today = r

	summary, err := m.svc.Dashboard()
	if err != nil {
		m.fail("load summary", err)
		return
	}
	m.summary = summary
	m.trendModel.SetSummary(summary)

	records, err := m.svc.History(0)
	if err != nil {
		m.fail("load history", err)
		return
	}
	m.historyModel.SetRecords(records)

	list, err := m.svc.Decisions(0, true)
	if err != nil {
		m.fail("load decisions", err)
		return
	}
	m.decisionsModel.SetDecisions(list)

	journalEntries, err := m.svc.Entries(0, "")
	if err != nil {
		m.fail("load entries", err)
		return
	}
	m.entriesModel.SetEntries(journalEntries)

	if res, err := m.svc.Check(); err == nil && res.HasConflicts() {
		m.status = fmt.Sprintf("⚠ %d validation warning(s), run 'daylog doctor'", len(res.Conflicts))
	}
}

func (m *Model) fail(action string, err error) {
	logger.Error("TUI action failed", "action", action, "error", err)
	m.status = fmt.Sprintf("⚠ %s: %v", action, err)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == constants.StateToday {
		keys = append(keys, m.keys.Morning, m.keys.Evening)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	var actions []key.Binding
	switch m.state {
	case constants.StateToday:
		actions = []key.Binding{m.keys.Morning, m.keys.Evening}
	case constants.StateRecordDetail:
		actions = []key.Binding{m.keys.Back}
	}
	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// State reports the active screen.
func (m Model) State() constants.SessionState {
	return m.state
}

// Status returns the current status line.
func (m Model) Status() string {
	return m.status
}

func (m *Model) resize() {
	contentHeight := m.height - 6
	if contentHeight < 3 {
		contentHeight = 3
	}
	m.historyModel.SetSize(m.width-4, contentHeight)
	m.decisionsModel.SetSize(m.width-4, contentHeight)
	m.entriesModel.SetSize(m.width-4, contentHeight)
	m.trendModel.SetSize(m.width-4, contentHeight)
	m.detail.Width = m.width - 4
	m.detail.Height = contentHeight
}
