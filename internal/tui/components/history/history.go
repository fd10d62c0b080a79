package history

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nudge/internal/models"
)

type DeleteMsg struct {
	ID string
}

var emptyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")).
	Padding(1, 2)

const emptyPlaceholder = "No reminders recorded yet."

// filterCycle is the order the 'f' key steps through.
var filterCycle = []models.Filter{
	models.FilterAll,
	models.FilterUpcoming,
	models.FilterMissed,
	models.FilterCompleted,
}

type Item struct {
	Reminder models.Reminder
}

func (i Item) Title() string {
	icon := "•"
	switch i.Reminder.Status {
	case models.StatusUpcoming:
		icon = "⏰"
	case models.StatusMissed:
		icon = "✗"
	case models.StatusCompleted:
		icon = "✓"
	}
	return fmt.Sprintf("%s %s", icon, i.Reminder.Title)
}

func (i Item) Description() string {
	when := strings.Replace(i.Reminder.DateTime, "T", " ", 1)
	parts := []string{when, string(i.Reminder.Status)}
	if i.Reminder.Category != "" {
		parts = append(parts, i.Reminder.Category)
	}
	return strings.Join(parts, " · ")
}

func (i Item) FilterValue() string { return i.Reminder.Title }

type KeyMap struct {
	Delete key.Binding
	Filter key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle filter"),
		),
	}
}

// Model renders the full reminder history with a status filter. It keeps the
// unfiltered collection so cycling the filter is a pure re-derivation.
type Model struct {
	list      list.Model
	keys      KeyMap
	filter    models.Filter
	reminders []models.Reminder
}

func New(reminders []models.Reminder, width, height int) Model {
	m := Model{
		keys:      DefaultKeyMap(),
		filter:    models.FilterAll,
		reminders: reminders,
	}

	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{m.keys.Delete, m.keys.Filter}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{m.keys.Delete, m.keys.Filter}
	}

	m.list = l
	m.rebuild()
	return m
}

// SetReminders replaces the backing collection and re-derives the view.
func (m *Model) SetReminders(reminders []models.Reminder) {
	m.reminders = reminders
	m.rebuild()
}

// Filter returns the currently applied status filter.
func (m Model) Filter() models.Filter {
	return m.filter
}

func (m *Model) rebuild() {
	matched := models.History(m.reminders, m.filter)
	items := make([]list.Item, len(matched))
	for i, r := range matched {
		items[i] = Item{Reminder: r}
	}
	m.list.SetItems(items)
	m.list.Title = fmt.Sprintf("History: %s (%d)", m.filter, len(matched))
}

func (m *Model) cycleFilter() {
	for i, f := range filterCycle {
		if f == m.filter {
			m.filter = filterCycle[(i+1)%len(filterCycle)]
			break
		}
	}
	m.rebuild()
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
		case key.Matches(msg, m.keys.Filter):
			m.cycleFilter()
			return m, nil
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
			m.list.Styles.Title.Render(m.list.Title),
			emptyStyle.Render(emptyPlaceholder),
		)
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
