package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/forms"
	"github.com/julianstephens/daylog/internal/tui/components/decisions"
	"github.com/julianstephens/daylog/internal/tui/components/entries"
	"github.com/julianstephens/daylog/internal/tui/components/history"
	"github.com/julianstephens/daylog/internal/tui/components/record"
)

var tabCount = constants.SessionState(len(tabTitles))

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
	}

	switch m.state {
	case constants.StateMorningForm, constants.StateEveningForm, constants.StateDecisionForm, constants.StateEntryForm:
		cmd := m.updateForm(msg)
		return m, cmd
	case constants.StateRecordDetail:
		if msg, ok := msg.(tea.KeyMsg); ok && (key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Quit)) {
			m.state = m.previousState
			return m, nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case history.OpenRecordMsg:
		m.previousState = m.state
		m.state = constants.StateRecordDetail
		m.detail.SetContent(record.Body(msg.Record))
		m.detail.GotoTop()
		return m, nil

	case decisions.AddDecisionMsg:
		m.decisionForm = &forms.DecisionFormModel{Date: m.todayDate}
		m.form = forms.NewDecisionForm(m.decisionForm)
		m.enterForm(constants.StateDecisionForm)
		return m, m.form.Init()

	case decisions.DeleteDecisionMsg:
		if err := m.svc.DeleteDecision(msg.ID); err != nil {
			m.fail("delete decision", err)
		} else {
			m.status = "Decision deleted"
			m.refresh()
		}
		return m, nil

	case decisions.RestoreDecisionMsg:
		if err := m.svc.RestoreDecision(msg.ID); err != nil {
			m.fail("restore decision", err)
		} else {
			m.status = "Decision restored"
			m.refresh()
		}
		return m, nil

	case entries.AddEntryMsg:
		m.entryForm = &forms.EntryFormModel{Date: m.todayDate}
		m.form = forms.NewEntryForm(m.entryForm)
		m.enterForm(constants.StateEntryForm)
		return m, m.form.Init()

	case entries.DeleteEntryMsg:
		if err := m.svc.DeleteEntry(msg.ID); err != nil {
			m.fail("delete entry", err)
		} else {
			m.status = "Entry deleted"
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.status = ""
			m.refresh()
			return m, nil
		}

		if m.state == constants.StateToday {
			switch {
			case key.Matches(msg, m.keys.Morning):
				m.morningForm = forms.MorningFormFrom(m.today)
				m.form = forms.NewMorningForm(m.morningForm)
				m.enterForm(constants.StateMorningForm)
				return m, m.form.Init()
			case key.Matches(msg, m.keys.Evening):
				m.eveningForm = forms.EveningFormFrom(m.today)
				m.form = forms.NewEveningForm(m.eveningForm)
				m.enterForm(constants.StateEveningForm)
				return m, m.form.Init()
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateHistory:
		m.historyModel, cmd = m.historyModel.Update(msg)
	case constants.StateTrend:
		m.trendModel, cmd = m.trendModel.Update(msg)
	case constants.StateDecisions:
		m.decisionsModel, cmd = m.decisionsModel.Update(msg)
	case constants.StateEntries:
		m.entriesModel, cmd = m.entriesModel.Update(msg)
	}
	return m, cmd
}

func (m *Model) enterForm(state constants.SessionState) {
	m.previousState = m.state
	m.state = state
	m.status = ""
}

// updateForm drives the active huh form and saves it once completed.
func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.saveForm(); err != nil {
			m.fail("save", err)
			// Stay on the form so the input can be corrected.
			m.form.State = huh.StateNormal
			return cmd
		}
		m.state = m.previousState
		m.refresh()
	case huh.StateAborted:
		m.state = m.previousState
	}
	return cmd
}

func (m *Model) saveForm() error {
	switch m.state {
	case constants.StateMorningForm:
		_, err := m.svc.SaveMorning(m.todayDate, m.morningForm.Intentions(), string(m.morningForm.Mood))
		if err == nil {
			m.status = "Morning saved"
		}
		return err
	case constants.StateEveningForm:
		_, err := m.svc.SaveEvening(m.todayDate, m.eveningForm.Reflection, m.eveningForm.TopWin, string(m.eveningForm.Mood))
		if err == nil {
			m.status = "Evening saved"
		}
		return err
	case constants.StateDecisionForm:
		_, err := m.svc.AddDecision(m.decisionForm.Input())
		if err == nil {
			m.status = "Decision saved"
		}
		return err
	case constants.StateEntryForm:
		_, err := m.svc.AddEntry(m.entryForm.Input())
		if err == nil {
			m.status = "Entry saved"
		}
		return err
	}
	return nil
}
