package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Percent  key.Binding
	Pixel    key.Binding
	Press    key.Binding
	StepUp   key.Binding
	StepDown key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next control"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous control"),
		),
		Percent: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "percent"),
		),
		Pixel: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "pixel"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "press"),
		),
		StepUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "increment"),
		),
		StepDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "decrement"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy value"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "done"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.StepUp, k.StepDown, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Press},
		{k.Percent, k.Pixel, k.StepUp, k.StepDown},
		{k.Copy, k.Help, k.Quit},
	}
}
