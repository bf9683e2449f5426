package field

import (
	"math"

	"github.com/alexisbeaulieu97/unitfield/internal/logger"
)

// Listener receives the state after every committed change.
type Listener func(State)

type subscription struct {
	id int
	fn Listener
}

// Store owns the field state for a rendering layer. It is driven from a
// single event loop and is not safe for concurrent use.
type Store struct {
	state     State
	log       *logger.Logger
	listeners []subscription
	nextID    int
}

// NewStore creates a store holding initial. A nil logger discards entries.
func NewStore(initial State, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Discard()
	}
	return &Store{state: initial, log: log}
}

// State returns the current state.
func (s *Store) State() State {
	return s.state
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Change records keystroke text.
func (s *Store) Change(text string) bool {
	return s.Apply(Action{Kind: ActionType, Text: text})
}

// Blur settles the current text.
func (s *Store) Blur() bool {
	return s.Apply(Action{Kind: ActionBlur})
}

// SwitchUnit re-clamps the value for unit.
func (s *Store) SwitchUnit(unit Unit) bool {
	return s.Apply(Action{Kind: ActionUnit, Unit: unit})
}

// Increment steps the value up by one. It reports false when disabled.
func (s *Store) Increment() bool {
	return s.Apply(Action{Kind: ActionIncrement})
}

// Decrement steps the value down by one. It reports false when disabled.
func (s *Store) Decrement() bool {
	return s.Apply(Action{Kind: ActionDecrement})
}

// Apply runs action and reports whether the state changed.
func (s *Store) Apply(action Action) bool {
	prev := s.state
	next := prev.Apply(action)

	switch action.Kind {
	case ActionUnit, ActionIncrement, ActionDecrement:
		if next.Phase == Settled && math.IsNaN(prev.Number()) {
			s.log.WithFields(map[string]any{
				"action": action.String(),
				"text":   prev.Value,
			}).Warn("non-numeric value clamped to unit minimum")
		}
	}

	if next == prev {
		s.log.WithFields(map[string]any{"action": action.String(), "state": prev.String()}).Debug("transition ignored")
		return false
	}

	s.state = next
	s.log.WithFields(map[string]any{
		"action": action.String(),
		"from":   prev.String(),
		"to":     next.String(),
		"phase":  next.Phase.String(),
	}).Debug("transition")

	for _, sub := range append([]subscription(nil), s.listeners...) {
		sub.fn(next)
	}
	return true
}
