package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nudge/internal/constants"
	"github.com/julianstephens/nudge/internal/intake"
	"github.com/julianstephens/nudge/internal/tui/components/active"
	"github.com/julianstephens/nudge/internal/tui/components/clock"
	"github.com/julianstephens/nudge/internal/tui/components/history"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		contentHeight := msg.Height - v - 4 // tabs + help + banner
		m.clockModel.SetSize(msg.Width-h, contentHeight)
		m.activeModel.SetSize(msg.Width-h, contentHeight)
		m.historyModel.SetSize(msg.Width-h, contentHeight)
		return m, nil

	case clock.TickMsg:
		var cmd tea.Cmd
		m.clockModel, cmd = m.clockModel.Update(msg)
		return m, cmd

	case PollMsg:
		if m.engine.Evaluate(time.Time(msg)) {
			m.refresh()
		}
		return m, pollTick()

	case active.AddMsg:
		return m.openAddForm()

	case active.MarkDoneMsg:
		m.engine.MarkDone(msg.ID)
		m.refresh()
		return m, nil

	case active.DeleteMsg:
		m.engine.Delete(msg.ID)
		m.refresh()
		return m, nil

	case history.DeleteMsg:
		m.engine.Delete(msg.ID)
		m.refresh()
		return m, nil
	}

	// Handle Add Reminder State
	if m.state == constants.StateAdd {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateActive
			m.formError = ""
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			reminder, warning, err := intake.Submit(intake.Fields{
				Title:    m.addForm.Title,
				Category: m.addForm.Category,
				Date:     m.addForm.Date,
				Time:     m.addForm.Time,
				Meridiem: m.addForm.Meridiem,
				Notes:    m.addForm.Notes,
			}, time.Now())
			if err != nil {
				// Stay in the form; the first failing rule is the message.
				m.formError = err.Error()
				m.form.State = huh.StateNormal
				break
			}

			m.engine.Add(reminder)
			m.warning = warning
			m.formError = ""
			m.refresh()
			m.state = constants.StateActive
		case huh.StateAborted:
			m.state = constants.StateActive
			m.formError = ""
		}
		return m, tea.Batch(cmds...)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		// While a list filter prompt is capturing input, only ctrl+c is global.
		if m.focusedFiltering() {
			if msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
			return m.routeToFocused(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = nextState(m.state)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = prevState(m.state)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Add):
			// The active list emits its own AddMsg; handle the rest here.
			if m.state != constants.StateActive {
				return m.openAddForm()
			}
		}
	}

	return m.routeToFocused(msg)
}

func (m Model) openAddForm() (tea.Model, tea.Cmd) {
	m.addForm = NewAddFormModel()
	m.form = NewAddForm(m.addForm)
	m.state = constants.StateAdd
	m.formError = ""
	m.warning = ""
	return m, m.form.Init()
}

func (m Model) focusedFiltering() bool {
	switch m.state {
	case constants.StateActive:
		return m.activeModel.Filtering()
	case constants.StateHistory:
		return m.historyModel.Filtering()
	}
	return false
}

func (m Model) routeToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case constants.StateActive:
		m.activeModel, cmd = m.activeModel.Update(msg)
	case constants.StateHistory:
		m.historyModel, cmd = m.historyModel.Update(msg)
	}
	return m, cmd
}

func nextState(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateClock:
		return constants.StateActive
	case constants.StateActive:
		return constants.StateHistory
	case constants.StateHistory:
		return constants.StateClock
	}
	return s
}

func prevState(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateClock:
		return constants.StateHistory
	case constants.StateActive:
		return constants.StateClock
	case constants.StateHistory:
		return constants.StateActive
	}
	return s
}
