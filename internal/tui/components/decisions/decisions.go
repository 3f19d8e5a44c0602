package decisions

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/utils"
)

type AddDecisionMsg struct{}

type DeleteDecisionMsg struct {
	ID string
}

type RestoreDecisionMsg struct {
	ID string
}

type Item struct {
	Decision models.Decision
}

func (i Item) Title() string {
	title := fmt.Sprintf("%s | %s", i.Decision.Date, i.Decision.Title)
	if i.Decision.DeletedAt != nil {
		return "👻 " + title + " (deleted)"
	}
	return title
}

func (i Item) Description() string {
	desc := i.Decision.Choice
	if desc == "" {
		desc = i.Decision.Context
	}
	if len(i.Decision.Tags) > 0 {
		desc += " [" + utils.JoinTags(i.Decision.Tags) + "]"
	}
	if i.Decision.DeletedAt != nil {
		desc += " | can restore with 'r'"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Decision.Title }

type KeyMap struct {
	Add     key.Binding
	Delete  key.Binding
	Restore key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(decisions []models.Decision, width, height int) Model {
	l := list.New(toItems(decisions), list.NewDefaultDelegate(), width, height)
	l.Title = "Decisions"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete, keys.Restore}
	}
	return Model{list: l, keys: keys}
}

func toItems(decisions []models.Decision) []list.Item {
	items := make([]list.Item, len(decisions))
	for i, d := range decisions {
		items[i] = Item{Decision: d}
	}
	return items
}

func (m *Model) SetDecisions(decisions []models.Decision) {
	m.list.SetItems(toItems(decisions))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddDecisionMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok && i.Decision.DeletedAt == nil {
				return m, func() tea.Msg { return DeleteDecisionMsg{ID: i.Decision.ID} }
			}
		case key.Matches(msg, m.keys.Restore):
			if i, ok := m.list.SelectedItem().(Item); ok && i.Decision.DeletedAt != nil {
				return m, func() tea.Msg { return RestoreDecisionMsg{ID: i.Decision.ID} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No decisions yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
