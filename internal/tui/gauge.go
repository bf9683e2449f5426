package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/alexisbeaulieu97/unitfield/internal/field"
)

// gauge draws how much of a bounded unit's range the value covers.
type gauge struct {
	bar progress.Model
}

func newGauge(accent string) gauge {
	bar := progress.New(progress.WithSolidFill(accent), progress.WithoutPercentage())
	bar.Width = 24
	return gauge{bar: bar}
}

// Ratio returns the covered fraction of the unit's range, false for
// unbounded units and text with no number.
func (g gauge) Ratio(state field.State) (float64, bool) {
	r := state.Unit.Range()
	n := state.Number()
	if !r.Bounded() || math.IsNaN(n) || r.Max == r.Min {
		return 0, false
	}
	return (r.ClampFloat(n) - r.Min) / (r.Max - r.Min), true
}

// View renders the bar, or "" when Ratio has nothing to show.
func (g gauge) View(state field.State) string {
	ratio, ok := g.Ratio(state)
	if !ok {
		return ""
	}
	return g.bar.ViewAs(ratio)
}
