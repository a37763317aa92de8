// Package format holds number-formatting helpers for axis ticks, legends and
// status lines.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Round rounds v to the given number of decimal digits.
func Round(v float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	return math.Round(v*pow) / pow
}

// Comma formats v in fixed notation with thousands separators, keeping the
// shortest decimal representation: Comma(1234567.5) == "1,234,567.5".
func Comma(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	b.WriteString(frac)
	return b.String()
}

var siPrefixes = []struct {
	factor float64
	symbol string
}{
	{1e12, "T"},
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
	{1, ""},
	{1e-3, "m"},
	{1e-6, "µ"},
	{1e-9, "n"},
}

// SI formats v with a metric prefix: SI(1530, 1) == "1.5k". Zero stays "0"
// and magnitudes outside the prefix table fall back to scientific notation.
func SI(v float64, digits int) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e15 || abs < 1e-9 {
		return strconv.FormatFloat(v, 'e', digits, 64)
	}
	for _, p := range siPrefixes {
		if abs >= p.factor {
			return trimZeros(strconv.FormatFloat(v/p.factor, 'f', digits, 64)) + p.symbol
		}
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// Percent formats v (a fraction) as a percentage: Percent(0.257, 1) == "25.7%".
func Percent(v float64, digits int) string {
	return trimZeros(strconv.FormatFloat(v*100, 'f', digits, 64)) + "%"
}

func trimZeros(s string) string {
	if !strings.ContainsRune(s, '.') {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// ChartValues adapts a float formatter to go-chart's axis value formatter.
// Non-numeric values fall back to their default representation.
func ChartValues(f func(float64) string) chart.ValueFormatter {
	return func(v interface{}) string {
		switch n := v.(type) {
		case float64:
			return f(n)
		case float32:
			return f(float64(n))
		case int:
			return f(float64(n))
		case int64:
			return f(float64(n))
		default:
			return fmt.Sprintf("%v", v)
		}
	}
}
