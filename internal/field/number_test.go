package field

import (
	"math"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestCleanNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "digits", input: "42", want: "42"},
		{name: "stops at letter", input: "12a34", want: "12"},
		{name: "empty", input: "", want: "0"},
		{name: "lone dot", input: ".", want: "0"},
		{name: "second dot stops scan", input: "3.1.4", want: "3.1"},
		{name: "leading dot kept", input: ".5", want: ".5"},
		{name: "trailing dot kept", input: "7.", want: "7."},
		{name: "negative sign", input: "-5", want: "0"},
		{name: "leading space", input: " 5", want: "0"},
		{name: "exponent cut", input: "1e+21", want: "1"},
		{name: "leading zeros kept", input: "007", want: "007"},
		{name: "non ascii digit", input: "1٣", want: "1"},
		{name: "dot then letter", input: ".x9", want: "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, CleanNumber(tt.input))
		})
	}
}

func TestCleanNumberProperties(t *testing.T) {
	t.Parallel()

	property := func(s string) bool {
		out := CleanNumber(s)
		if out == "" || out == "." {
			return false
		}
		if strings.Count(out, ".") > 1 {
			return false
		}
		for _, c := range out {
			if c != '.' && (c < '0' || c > '9') {
				return false
			}
		}
		if !strings.HasPrefix(s, out) {
			// Only the fallback may differ from the input prefix.
			return out == "0"
		}
		if len(out) < len(s) {
			next := s[len(out)]
			if next >= '0' && next <= '9' {
				return false
			}
			if next == '.' && !strings.Contains(out, ".") {
				return false
			}
		}
		return true
	}

	require.NoError(t, quick.Check(property, &quick.Config{MaxCount: 2000}))

	for _, s := range []string{"", ".", "..", "-", "0", "0.0.0", "12a34", "9.9x", "٣"} {
		require.True(t, property(s), "input %q", s)
	}
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  float64
	}{
		{input: "12", want: 12},
		{input: "12abc", want: 12},
		{input: "  3.5", want: 3.5},
		{input: "-4", want: -4},
		{input: "5.", want: 5},
		{input: ".25", want: 0.25},
		{input: "3.1.4", want: 3.1},
		{input: "1e3", want: 1000},
		{input: "1e", want: 1},
		{input: "2e+x", want: 2},
		{input: "0x10", want: 0},
		{input: "Infinity", want: math.Inf(1)},
		{input: "-Infinity", want: math.Inf(-1)},
		{input: "1e400", want: math.Inf(1)},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ParseNumber(tt.input), "input %q", tt.input)
	}

	for _, input := range []string{"", "abc", ".", "-", "+.", "e5", "NaN", "Inf"} {
		require.True(t, math.IsNaN(ParseNumber(input)), "input %q", input)
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input float64
		want  string
	}{
		{input: 0, want: "0"},
		{input: math.Copysign(0, -1), want: "0"},
		{input: 1, want: "1"},
		{input: 2.5, want: "2.5"},
		{input: 0.1 + 0.2, want: "0.30000000000000004"},
		{input: 1e20, want: "100000000000000000000"},
		{input: 1e21, want: "1e+21"},
		{input: 1.5e-7, want: "1.5e-7"},
		{input: 0.000001, want: "0.000001"},
		{input: math.Inf(1), want: "Infinity"},
		{input: math.NaN(), want: "NaN"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FormatNumber(tt.input))
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	require.Equal(t, "100", Clamp(150, Percent))
	require.Equal(t, "0", Clamp(-3, Percent))
	require.Equal(t, "42.5", Clamp(42.5, Percent))
	require.Equal(t, "150", Clamp(150, Pixel))
	require.Equal(t, "0", Clamp(-0.5, Pixel))
	require.Equal(t, "Infinity", Clamp(math.Inf(1), Pixel))
	require.Equal(t, "100", Clamp(math.Inf(1), Percent))
}

func TestClampNaNUsesMinimum(t *testing.T) {
	t.Parallel()

	for _, unit := range Units() {
		require.Equal(t, "0", Clamp(math.NaN(), unit))
	}
}

func TestClampStaysInRangeAndIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, unit := range Units() {
		unit := unit
		property := func(v float64) bool {
			once := Clamp(v, unit)
			n := ParseNumber(once)
			if !unit.Range().Contains(n) {
				return false
			}
			return Clamp(n, unit) == once
		}
		require.NoError(t, quick.Check(property, nil), "unit %s", unit)

		for _, v := range []float64{-1e300, -1, 0, 0.5, 99.99, 100, 100.01, 1e21, math.NaN()} {
			require.True(t, property(v), "unit %s value %v", unit, v)
		}
	}
}
