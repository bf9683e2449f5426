package field

import (
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/unitfield/pkg/errors"
)

// ActionKind names a user interaction.
type ActionKind string

const (
	ActionType      ActionKind = "type"
	ActionBlur      ActionKind = "blur"
	ActionUnit      ActionKind = "unit"
	ActionIncrement ActionKind = "inc"
	ActionDecrement ActionKind = "dec"
)

// Action is a single interaction replayed against a State.
type Action struct {
	Kind ActionKind
	Text string
	Unit Unit
}

// ParseAction decodes "type:<text>", "blur", "unit:<unit>", "inc" or "dec".
func ParseAction(raw string) (Action, error) {
	name, arg, hasArg := strings.Cut(raw, ":")
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "type":
		if !hasArg {
			return Action{}, apperrors.NewValidationError("action", fmt.Sprintf("%q needs text, e.g. type:12", raw), nil)
		}
		return Action{Kind: ActionType, Text: arg}, nil
	case "blur":
		return Action{Kind: ActionBlur}, nil
	case "unit", "switch":
		unit, err := ParseUnit(arg)
		if err != nil {
			return Action{}, apperrors.NewValidationError("action", fmt.Sprintf("%q has no valid unit", raw), err)
		}
		return Action{Kind: ActionUnit, Unit: unit}, nil
	case "inc", "increment", "+":
		return Action{Kind: ActionIncrement}, nil
	case "dec", "decrement", "-":
		return Action{Kind: ActionDecrement}, nil
	default:
		return Action{}, apperrors.NewValidationError("action", fmt.Sprintf("unknown action %q", raw), nil)
	}
}

// ParseActions decodes each entry, stopping at the first invalid one.
func ParseActions(raw []string) ([]Action, error) {
	actions := make([]Action, 0, len(raw))
	for _, entry := range raw {
		action, err := ParseAction(entry)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func (a Action) String() string {
	switch a.Kind {
	case ActionType:
		return "type:" + a.Text
	case ActionUnit:
		return "unit:" + string(a.Unit)
	default:
		return string(a.Kind)
	}
}

// Apply runs the transition named by a.
func (s State) Apply(a Action) State {
	switch a.Kind {
	case ActionType:
		return s.Change(a.Text)
	case ActionBlur:
		return s.Blur()
	case ActionUnit:
		return s.SwitchUnit(a.Unit)
	case ActionIncrement:
		return s.Increment()
	case ActionDecrement:
		return s.Decrement()
	default:
		return s
	}
}
