package field

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// CleanNumber reduces text to its leading unsigned decimal literal.
//
// Digits are always accepted and the first '.' is accepted once; scanning
// stops at any other character. An empty result or a lone '.' becomes "0".
func CleanNumber(text string) string {
	var b strings.Builder
	dotUsed := false

scan:
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '.' && !dotUsed:
			b.WriteByte(c)
			dotUsed = true
		default:
			break scan
		}
	}

	result := b.String()
	if result == "" || result == "." {
		return "0"
	}
	return result
}

// Clamp bounds v to the unit's range and formats the result.
func Clamp(v float64, unit Unit) string {
	return FormatNumber(unit.Range().ClampFloat(v))
}

// ParseNumber reads the longest numeric prefix of text, after leading
// whitespace. Text without a numeric prefix yields NaN.
func ParseNumber(text string) float64 {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)
	end := floatPrefix(s)
	if end == 0 {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}

// FormatNumber renders v in its shortest round-trip form. Magnitudes from
// 1e-6 up to 1e21 are written positionally, the rest in exponent form.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + exp[:1] + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func floatPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return i + len("Infinity")
	}

	start := i
	i = skipDigits(s, i)
	intDigits := i - start

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := skipDigits(s, i+1)
		fracDigits = j - i - 1
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k := skipDigits(s, j); k > j {
			i = k
		}
	}
	return i
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
