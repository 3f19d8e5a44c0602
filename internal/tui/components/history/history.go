package history

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/tui/components/record"
)

// OpenRecordMsg asks the parent to show one record in full.
type OpenRecordMsg struct {
	Record models.DailyRecord
}

type Item struct {
	Record models.DailyRecord
}

func (i Item) Title() string {
	if i.Record.EveningCompleted {
		return "✓ " + i.Record.EntryDate
	}
	return "· " + i.Record.EntryDate
}
func (i Item) Description() string { return record.Summary(i.Record) }
func (i Item) FilterValue() string { return i.Record.EntryDate }

type Model struct {
	list list.Model
	open key.Binding
}

func New(records []models.DailyRecord, width, height int) Model {
	l := list.New(toItems(records), list.NewDefaultDelegate(), width, height)
	l.Title = "History"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	open := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{open} }
	return Model{list: l, open: open}
}

func toItems(records []models.DailyRecord) []list.Item {
	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = Item{Record: r}
	}
	return items
}

func (m *Model) SetRecords(records []models.DailyRecord) {
	m.list.SetItems(toItems(records))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		if key.Matches(msg, m.open) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return OpenRecordMsg(i) }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No days logged yet.\n  Start with the Today tab."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
