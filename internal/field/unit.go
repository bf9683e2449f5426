package field

import (
	"fmt"
	"math"
	"strings"

	apperrors "github.com/alexisbeaulieu97/unitfield/pkg/errors"
)

// Unit is the measurement mode of the value.
type Unit string

const (
	Percent Unit = "%"
	Pixel   Unit = "px"
)

// Range is the closed interval a unit's value must lie in. Max may be +Inf.
type Range struct {
	Min float64
	Max float64
}

var rangeRules = map[Unit]Range{
	Percent: {Min: 0, Max: 100},
	Pixel:   {Min: 0, Max: math.Inf(1)},
}

// Units lists the supported units in display order.
func Units() []Unit {
	return []Unit{Percent, Pixel}
}

// ParseUnit resolves a unit symbol or name.
func ParseUnit(raw string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "%", "percent", "pct":
		return Percent, nil
	case "px", "pixel", "pixels":
		return Pixel, nil
	default:
		return "", apperrors.NewValidationError("unit", fmt.Sprintf("unknown unit %q (expected %% or px)", raw), nil)
	}
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	_, ok := rangeRules[u]
	return ok
}

func (u Unit) String() string {
	return string(u)
}

// Range returns the unit's range rule. Unknown units are bounded below by
// zero only.
func (u Unit) Range() Range {
	if r, ok := rangeRules[u]; ok {
		return r
	}
	return Range{Min: 0, Max: math.Inf(1)}
}

// Bounded reports whether the range has a finite upper bound.
func (r Range) Bounded() bool {
	return !math.IsInf(r.Max, 1)
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// ClampFloat bounds v to the range. NaN clamps to Min.
func (r Range) ClampFloat(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	return math.Min(r.Max, math.Max(r.Min, v))
}
