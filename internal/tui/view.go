package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/unitfield/internal/field"
)

// View renders the unit toggle, the value row, the percent gauge and the
// help footer.
func (m Model) View() string {
	state := m.store.State()

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, m.styles.label.Render(m.labels.Unit), m.renderToggle(state.Unit)),
		lipgloss.JoinHorizontal(lipgloss.Center, m.styles.label.Render(m.labels.Value), m.renderValueRow(state)),
	}

	if bar := m.gauge.View(state); bar != "" {
		rows = append(rows, strings.Repeat(" ", labelWidth)+bar)
	}

	if hint := m.hint(state); hint != "" {
		rows = append(rows, strings.Repeat(" ", labelWidth)+m.styles.hint.Render(hint))
	}

	if m.status != "" {
		style := m.styles.status
		if m.statusError {
			style = m.styles.statusError
		}
		rows = append(rows, style.Render(m.status))
	}

	rows = append(rows, "", m.help.View(m.keys))
	return m.styles.frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderToggle(current field.Unit) string {
	units := field.Units()
	parts := make([]string, 0, len(units))
	for _, unit := range units {
		style := m.styles.unitIdle
		if unit == current {
			style = m.styles.unitActive
		}
		parts = append(parts, style.Render(unit.String()))
	}

	frame := m.styles.toggleBlur
	if m.focus == ControlUnit {
		frame = m.styles.toggleFocus
	}
	return frame.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (m Model) renderValueRow(state field.State) string {
	inputStyle := m.styles.input
	if m.focus == ControlInput {
		inputStyle = m.styles.inputFocus
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.renderButton("−", state.IsMin(), m.focus == ControlMinus),
		inputStyle.Render(m.input.View()),
		m.renderButton("+", state.IsMax(), m.focus == ControlPlus),
	)
}

func (m Model) renderButton(label string, disabled, focused bool) string {
	switch {
	case disabled:
		return m.styles.buttonOff.Render(label)
	case focused:
		return m.styles.buttonFocus.Render(label)
	default:
		return m.styles.button.Render(label)
	}
}

// hint returns the boundary tooltip for the focused button, if it is disabled.
func (m Model) hint(state field.State) string {
	switch {
	case m.focus == ControlMinus && state.IsMin():
		return MinHint
	case m.focus == ControlPlus && state.IsMax():
		return MaxHint
	default:
		return ""
	}
}
