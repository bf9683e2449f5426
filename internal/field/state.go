package field

import "fmt"

// DefaultValue is the value a fresh field starts with.
const DefaultValue = "1"

// Phase distinguishes uncommitted typing from a settled value.
type Phase int

const (
	// Settled values have been sanitized and clamped for the current unit.
	Settled Phase = iota
	// Typing values hold raw keystroke text.
	Typing
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	default:
		return "settled"
	}
}

// State is the field's unit and value text. Methods never mutate the
// receiver; each returns the next state.
type State struct {
	Unit  Unit
	Value string
	Phase Phase
}

// NewState returns the initial field state: percent, value "1".
func NewState() State {
	return State{Unit: Percent, Value: DefaultValue, Phase: Settled}
}

// Settle builds a state for unit from arbitrary text by running it through
// the focus-loss path.
func Settle(unit Unit, text string) State {
	return State{Unit: unit, Value: text, Phase: Typing}.Blur()
}

// Change stores keystroke text verbatim.
func (s State) Change(text string) State {
	s.Value = text
	s.Phase = Typing
	return s
}

// Blur sanitizes and clamps the current text.
func (s State) Blur() State {
	s.Value = Clamp(ParseNumber(CleanNumber(s.Value)), s.Unit)
	s.Phase = Settled
	return s
}

// SwitchUnit re-clamps the current value for unit. The number is not
// rescaled and the text is not sanitized first.
func (s State) SwitchUnit(unit Unit) State {
	if unit == s.Unit {
		return s
	}
	num := ParseNumber(s.Value)
	s.Unit = unit
	s.Value = Clamp(num, unit)
	s.Phase = Settled
	return s
}

// Increment adds one, unless the value already sits at the unit's maximum.
func (s State) Increment() State {
	if s.IsMax() {
		return s
	}
	return s.step(1)
}

// Decrement subtracts one, unless the value already sits at zero.
func (s State) Decrement() State {
	if s.IsMin() {
		return s
	}
	return s.step(-1)
}

func (s State) step(delta float64) State {
	s.Value = Clamp(ParseNumber(s.Value)+delta, s.Unit)
	s.Phase = Settled
	return s
}

// IsMin reports whether decrementing is disabled.
func (s State) IsMin() bool {
	return s.Value == "0"
}

// IsMax reports whether incrementing is disabled. Only percent has a maximum.
func (s State) IsMax() bool {
	return s.Unit == Percent && s.Value == "100"
}

// Number parses the current text, NaN when it has no numeric prefix.
func (s State) Number() float64 {
	return ParseNumber(s.Value)
}

func (s State) String() string {
	return fmt.Sprintf("%s%s", s.Value, s.Unit)
}
