package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/unitfield/internal/field"
)

func TestViewShowsLabelsUnitsAndValue(t *testing.T) {
	m := newTestModel(t, field.State{Unit: field.Pixel, Value: "24"})
	view := m.View()

	assert.Contains(t, view, "Unit")
	assert.Contains(t, view, "Value")
	assert.Contains(t, view, "%")
	assert.Contains(t, view, "px")
	assert.Contains(t, view, "24")
	assert.NotContains(t, view, MinHint)
	assert.NotContains(t, view, MaxHint)
}

func TestHintOnlyForFocusedDisabledButton(t *testing.T) {
	tests := []struct {
		name  string
		state field.State
		focus Control
		want  string
	}{
		{name: "minus at zero", state: field.State{Unit: field.Percent, Value: "0"}, focus: ControlMinus, want: MinHint},
		{name: "plus at percent max", state: field.State{Unit: field.Percent, Value: "100"}, focus: ControlPlus, want: MaxHint},
		{name: "plus at pixel 100", state: field.State{Unit: field.Pixel, Value: "100"}, focus: ControlPlus, want: ""},
		{name: "minus at zero unfocused", state: field.State{Unit: field.Percent, Value: "0"}, focus: ControlInput, want: ""},
		{name: "enabled minus", state: field.State{Unit: field.Percent, Value: "5"}, focus: ControlMinus, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, tt.state, WithFocus(tt.focus))
			assert.Equal(t, tt.want, m.hint(tt.state))
		})
	}
}

func TestControlString(t *testing.T) {
	assert.Equal(t, "unit", ControlUnit.String())
	assert.Equal(t, "plus", ControlPlus.String())
	assert.Equal(t, "unknown", Control(42).String())
}
