package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nudge/internal/constants"
	"github.com/julianstephens/nudge/internal/engine"
	"github.com/julianstephens/nudge/internal/tui/components/active"
	"github.com/julianstephens/nudge/internal/tui/components/clock"
	"github.com/julianstephens/nudge/internal/tui/components/history"
)

// PollMsg drives the periodic status-engine evaluation.
type PollMsg time.Time

func pollTick() tea.Cmd {
	return tea.Tick(constants.PollInterval, func(t time.Time) tea.Msg {
		return PollMsg(t)
	})
}

type Model struct {
	engine       *engine.Service
	state        constants.SessionState
	keys         KeyMap
	help         help.Model
	clockModel   clock.Model
	activeModel  active.Model
	historyModel history.Model
	form         *huh.Form
	addForm      *AddFormModel
	formError    string
	warning      string
	quitting     bool
	width        int
	height       int
}

func NewModel(svc *engine.Service) Model {
	m := Model{
		engine:       svc,
		state:        constants.StateActive,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		clockModel:   clock.New(),
		activeModel:  active.New(svc.Active(), 0, 0),
		historyModel: history.New(svc.Reminders(), 0, 0),
	}
	m.updateClockSummary()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.clockModel.Init(), pollTick())
}

// refresh rebuilds both list views from the engine's collection.
func (m *Model) refresh() {
	m.activeModel.SetReminders(m.engine.Active())
	m.historyModel.SetReminders(m.engine.Reminders())
	m.updateClockSummary()
}

func (m *Model) updateClockSummary() {
	n := len(m.engine.Active())
	switch n {
	case 0:
		m.clockModel.Summary = "No upcoming reminders"
	case 1:
		m.clockModel.Summary = "1 upcoming reminder"
	default:
		m.clockModel.Summary = fmt.Sprintf("%d upcoming reminders", n)
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateActive:
		keys = append(keys, m.keys.Add)
	case constants.StateClock:
		keys = append(keys, m.keys.Add)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Add, m.keys.Help, m.keys.Quit}
	return [][]key.Binding{global}
}
