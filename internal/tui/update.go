package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/unitfield/internal/field"
)

// Update handles Bubble Tea messages and drives the store.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case copiedMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "clipboard write failed")
			m.setStatus(fmt.Sprintf("Copy failed: %v", msg.Err), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Copied %s", msg.Text), false)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	if m.focus == ControlInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.focus == ControlInput {
			m.input.Blur()
			m.store.Blur()
			m.syncInput()
		}
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		cmd := m.setFocus((m.focus + 1) % controlCount)
		return m, cmd

	case key.Matches(msg, m.keys.Prev):
		cmd := m.setFocus((m.focus + controlCount - 1) % controlCount)
		return m, cmd

	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(m.copy, m.store.State().String())
	}

	switch m.focus {
	case ControlUnit:
		return m.handleUnitKeys(msg)
	case ControlMinus:
		return m.handleButtonKeys(msg, m.store.Decrement)
	case ControlPlus:
		return m.handleButtonKeys(msg, m.store.Increment)
	default:
		return m.handleInputKeys(msg)
	}
}

func (m Model) handleUnitKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Percent):
		m.store.SwitchUnit(field.Percent)
	case key.Matches(msg, m.keys.Pixel):
		m.store.SwitchUnit(field.Pixel)
	case key.Matches(msg, m.keys.Press):
		next := field.Pixel
		if m.store.State().Unit == field.Pixel {
			next = field.Percent
		}
		m.store.SwitchUnit(next)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.syncInput()
	return m, nil
}

func (m Model) handleButtonKeys(msg tea.KeyMsg, press func() bool) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Press):
		press()
		m.syncInput()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.StepUp):
		m.store.Blur()
		m.store.Increment()
		m.syncInput()
		return m, nil
	case key.Matches(msg, m.keys.StepDown):
		m.store.Blur()
		m.store.Decrement()
		m.syncInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if text := m.input.Value(); text != m.store.State().Value {
		m.store.Change(text)
	}
	return m, cmd
}
