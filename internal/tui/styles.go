package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/unitfield/internal/config"
)

const labelWidth = 10

type styles struct {
	label       lipgloss.Style
	unitActive  lipgloss.Style
	unitIdle    lipgloss.Style
	toggleFocus lipgloss.Style
	toggleBlur  lipgloss.Style
	button      lipgloss.Style
	buttonFocus lipgloss.Style
	buttonOff   lipgloss.Style
	input       lipgloss.Style
	inputFocus  lipgloss.Style
	hint        lipgloss.Style
	status      lipgloss.Style
	statusError lipgloss.Style
	frame       lipgloss.Style
}

func newStyles(theme config.Theme) styles {
	accent := lipgloss.Color(theme.Accent)
	text := lipgloss.Color(theme.Text)
	muted := lipgloss.Color(theme.Muted)
	surface := lipgloss.Color(theme.Surface)

	button := lipgloss.NewStyle().
		Foreground(text).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted)

	input := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted)

	return styles{
		label:       lipgloss.NewStyle().Foreground(muted).Width(labelWidth),
		unitActive:  lipgloss.NewStyle().Foreground(text).Background(surface).Bold(true).Padding(0, 2),
		unitIdle:    lipgloss.NewStyle().Foreground(muted).Padding(0, 2),
		toggleFocus: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent),
		toggleBlur:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted),
		button:      button,
		buttonFocus: button.BorderStyle(lipgloss.ThickBorder()).BorderForeground(accent),
		buttonOff:   button.Faint(true),
		input:       input,
		inputFocus:  input.BorderForeground(accent),
		hint:        lipgloss.NewStyle().Foreground(text).Background(lipgloss.Color("0")).Padding(0, 1),
		status:      lipgloss.NewStyle().Foreground(muted),
		statusError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		frame:       lipgloss.NewStyle().Padding(1, 2),
	}
}
