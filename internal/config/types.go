package config

import (
	"github.com/alexisbeaulieu97/unitfield/internal/field"
)

// Config describes the widget's starting state and presentation.
type Config struct {
	Unit   string `yaml:"unit,omitempty" validate:"required,unit"`
	Value  string `yaml:"value,omitempty" validate:"max=64"`
	Labels Labels `yaml:"labels,omitempty"`
	Theme  Theme  `yaml:"theme,omitempty"`
}

// Labels are the captions shown next to each row.
type Labels struct {
	Unit  string `yaml:"unit,omitempty" validate:"required,max=24"`
	Value string `yaml:"value,omitempty" validate:"required,max=24"`
}

// Theme holds the widget colors.
type Theme struct {
	Accent  string `yaml:"accent,omitempty" validate:"required,hexcolor"`
	Text    string `yaml:"text,omitempty" validate:"required,hexcolor"`
	Muted   string `yaml:"muted,omitempty" validate:"required,hexcolor"`
	Surface string `yaml:"surface,omitempty" validate:"required,hexcolor"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Unit:  string(field.Percent),
		Value: field.DefaultValue,
		Labels: Labels{
			Unit:  "Unit",
			Value: "Value",
		},
		Theme: Theme{
			Accent:  "#3C67FF",
			Text:    "#F9F9F9",
			Muted:   "#AAAAAA",
			Surface: "#424242",
		},
	}
}

// FieldUnit resolves the configured unit.
func (c *Config) FieldUnit() (field.Unit, error) {
	return field.ParseUnit(c.Unit)
}

// InitialState settles the configured value for the configured unit.
func (c *Config) InitialState() (field.State, error) {
	unit, err := c.FieldUnit()
	if err != nil {
		return field.State{}, err
	}
	if c.Value == "" {
		return field.State{Unit: unit, Value: field.DefaultValue, Phase: field.Settled}, nil
	}
	return field.Settle(unit, c.Value), nil
}
