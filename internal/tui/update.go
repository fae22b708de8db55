package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case CalculationCompleteMsg:
		m.applyResult(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	recalc := false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.focus(m.focused - 1)

	case key.Matches(msg, m.keys.Down):
		m.focus(m.focused + 1)

	case key.Matches(msg, m.keys.Left):
		m.sliders[m.focused].Decrement(1)
		recalc = true

	case key.Matches(msg, m.keys.Right):
		m.sliders[m.focused].Increment(1)
		recalc = true

	case key.Matches(msg, m.keys.FastLeft):
		m.sliders[m.focused].Decrement(10)
		recalc = true

	case key.Matches(msg, m.keys.FastRight):
		m.sliders[m.focused].Increment(10)
		recalc = true

	case key.Matches(msg, m.keys.Timeframe):
		m.tfIndex = (m.tfIndex + 1) % len(m.timeframes)
		recalc = true

	case key.Matches(msg, m.keys.Locale):
		m.localeIndex = (m.localeIndex + 1) % len(m.locales)
		recalc = true
	}

	if !recalc {
		return m, nil
	}
	cmd := m.recalculateCmd()
	return m, cmd
}

// focus moves focus to slider i, wrapping around
func (m *Model) focus(i int) {
	n := len(m.sliders)
	m.sliders[m.focused].SetFocused(false)
	m.focused = ((i % n) + n) % n
	m.sliders[m.focused].SetFocused(true)
}
