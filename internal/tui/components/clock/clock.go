package clock

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nudge/internal/constants"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Align(lipgloss.Center)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// Model is the live clock readout. It re-renders every second and carries a
// small summary line fed by the root model.
type Model struct {
	Time    time.Time
	Summary string
	width   int
	height  int
}

func New() Model {
	return Model{
		Time: time.Now(),
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(constants.ClockInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.Time = time.Time(msg)
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		timeStyle.Render(m.Time.Format(constants.ClockFormat)),
		dateStyle.Render(m.Time.Format(constants.FullDateFormat)),
		summaryStyle.Render(m.Summary),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
