package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/unitfield/internal/config"
	"github.com/alexisbeaulieu97/unitfield/internal/field"
	"github.com/alexisbeaulieu97/unitfield/internal/logger"
)

// Hints shown next to a focused, disabled step button.
const (
	MinHint = "Value must be greater than 0"
	MaxHint = "Value must be between 0-100%"
)

// Control identifies a focusable part of the widget.
type Control int

const (
	ControlUnit Control = iota
	ControlMinus
	ControlInput
	ControlPlus
	controlCount
)

func (c Control) String() string {
	switch c {
	case ControlUnit:
		return "unit"
	case ControlMinus:
		return "minus"
	case ControlInput:
		return "input"
	case ControlPlus:
		return "plus"
	default:
		return "unknown"
	}
}

// CopyFunc writes text to the system clipboard.
type CopyFunc func(text string) error

// Option customises a Model.
type Option func(*Model)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn CopyFunc) Option {
	return func(m *Model) {
		m.copy = fn
	}
}

// WithFocus sets the initially focused control.
func WithFocus(c Control) Option {
	return func(m *Model) {
		if c >= 0 && c < controlCount {
			m.focus = c
		}
	}
}

type copiedMsg struct {
	Text string
	Err  error
}

// Model is the Bubble Tea widget rendering a field.Store.
type Model struct {
	store  *field.Store
	labels config.Labels
	log    *logger.Logger

	input  textinput.Model
	keys   keyMap
	help   help.Model
	gauge  gauge
	styles styles

	focus       Control
	status      string
	statusError bool
	done        bool
	copy        CopyFunc
}

// NewModel builds the widget around store.
func NewModel(store *field.Store, cfg *config.Config, log *logger.Logger, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.Discard()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = 12
	ti.SetValue(store.State().Value)

	m := Model{
		store:  store,
		labels: cfg.Labels,
		log:    log,
		input:  ti,
		keys:   defaultKeyMap(),
		help:   help.New(),
		gauge:  newGauge(cfg.Theme.Accent),
		styles: newStyles(cfg.Theme),
		focus:  ControlInput,
		copy:   clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}

	if m.focus == ControlInput {
		m.input.Focus()
	}
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State returns the field state shown by the widget.
func (m Model) State() field.State {
	return m.store.State()
}

// Focus returns the focused control.
func (m Model) Focus() Control {
	return m.focus
}

// Done reports whether the user closed the widget.
func (m Model) Done() bool {
	return m.done
}

// Status returns the last status line message.
func (m Model) Status() string {
	return m.status
}

func (m *Model) syncInput() {
	if value := m.store.State().Value; m.input.Value() != value {
		m.input.SetValue(value)
	}
}

func (m *Model) setFocus(next Control) tea.Cmd {
	prev := m.focus
	if next == prev {
		return nil
	}
	m.focus = next

	if prev == ControlInput {
		m.input.Blur()
		m.store.Blur()
		m.syncInput()
	}

	m.log.WithFields(map[string]any{"from": prev.String(), "to": next.String()}).Debug("focus moved")

	if next == ControlInput {
		return m.input.Focus()
	}
	return nil
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusError = isErr
}

func copyCmd(fn CopyFunc, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{Text: text, Err: fn(text)}
	}
}
