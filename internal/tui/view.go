package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nudge/internal/constants"
)

var tabNames = []struct {
	state constants.SessionState
	label string
}{
	{constants.StateClock, "Clock"},
	{constants.StateActive, "Reminders"},
	{constants.StateHistory, "History"},
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	if m.state == constants.StateAdd {
		b.WriteString("Add Reminder\n\n")
		if m.formError != "" {
			b.WriteString(errorStyle.Render(m.formError) + "\n\n")
		}
		b.WriteString(m.form.View())
		return docStyle.Render(b.String())
	}

	b.WriteString(m.viewTabs() + "\n\n")

	if m.warning != "" {
		b.WriteString(warningStyle.Render(m.warning) + "\n\n")
	}

	switch m.state {
	case constants.StateClock:
		b.WriteString(m.clockModel.View())
	case constants.StateActive:
		b.WriteString(m.activeModel.View())
	case constants.StateHistory:
		b.WriteString(m.historyModel.View())
	}

	b.WriteString("\n" + m.help.View(m))

	return docStyle.Render(b.String())
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(tabNames))
	for _, t := range tabNames {
		if t.state == m.state {
			tabs = append(tabs, activeTabStyle.Render(t.label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(t.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
