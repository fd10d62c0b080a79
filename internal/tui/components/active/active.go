package active

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nudge/internal/models"
)

type AddMsg struct{}

type MarkDoneMsg struct {
	ID string
}

type DeleteMsg struct {
	ID string
}

var emptyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")).
	Padding(1, 2)

const emptyPlaceholder = "No upcoming reminders. Press 'a' to add one."

type Item struct {
	Reminder models.Reminder
}

func (i Item) Title() string {
	return fmt.Sprintf("⏰ %s", i.Reminder.Title)
}

func (i Item) Description() string {
	when := strings.Replace(i.Reminder.DateTime, "T", " ", 1)
	if i.Reminder.Category != "" {
		return fmt.Sprintf("%s · %s", when, i.Reminder.Category)
	}
	return when
}

func (i Item) FilterValue() string { return i.Reminder.Title }

type KeyMap struct {
	Add    key.Binding
	Done   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Done: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c", "complete"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(reminders []models.Reminder, width, height int) Model {
	l := list.New(toItems(reminders), list.NewDefaultDelegate(), width, height)
	l.Title = countTitle(len(reminders))
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Done, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Done, keys.Delete}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

func countTitle(n int) string {
	return fmt.Sprintf("Upcoming (%d)", n)
}

func toItems(reminders []models.Reminder) []list.Item {
	items := make([]list.Item, len(reminders))
	for i, r := range reminders {
		items[i] = Item{Reminder: r}
	}
	return items
}

func (m *Model) SetReminders(reminders []models.Reminder) {
	m.list.SetItems(toItems(reminders))
	m.list.Title = countTitle(len(reminders))
}

// Filtering reports whether the embedded list is capturing keystrokes for
// its filter prompt.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering() {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMsg{} }
		case key.Matches(msg, m.keys.Done):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg {
					return MarkDoneMsg{ID: item.Reminder.ID}
				}
			}
		case key.Matches(msg, m.keys.Delete):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg {
					return DeleteMsg{ID: item.Reminder.ID}
				}
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.list.Styles.Title.Render(countTitle(0)),
			emptyStyle.Render(emptyPlaceholder),
		)
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
