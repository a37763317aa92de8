package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert.Equal(t, 3.14, Round(3.14159, 2))
	assert.Equal(t, 3.0, Round(3.14159, 0))
	assert.Equal(t, -2.7, Round(-2.68, 1))
	assert.Equal(t, 1200.0, Round(1234, -2))
}

func TestComma(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{1234567.5, "1,234,567.5"},
		{-98765.25, "-98,765.25"},
		{-12, "-12"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Comma(tc.in), "Comma(%v)", tc.in)
	}
}

func TestSI(t *testing.T) {
	cases := []struct {
		in     float64
		digits int
		want   string
	}{
		{0, 1, "0"},
		{1530, 1, "1.5k"},
		{1000, 1, "1k"},
		{2400000, 0, "2M"},
		{4.2e9, 1, "4.2G"},
		{1.1e12, 1, "1.1T"},
		{0.5, 1, "500m"},
		{0.0042, 1, "4.2m"},
		{2.5e-6, 1, "2.5µ"},
		{3e-9, 0, "3n"},
		{-1530, 1, "-1.5k"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SI(tc.in, tc.digits), "SI(%v, %d)", tc.in, tc.digits)
	}
}

func TestSIOutOfRangeFallsBackToScientific(t *testing.T) {
	assert.Contains(t, SI(1e18, 1), "e+")
	assert.Contains(t, SI(1e-12, 1), "e-")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "25.7%", Percent(0.257, 1))
	assert.Equal(t, "100%", Percent(1, 0))
	assert.Equal(t, "0%", Percent(0, 2))
	assert.Equal(t, "-5%", Percent(-0.05, 1))
}

func TestChartValues(t *testing.T) {
	f := ChartValues(func(v float64) string { return SI(v, 1) })

	assert.Equal(t, "1.5k", f(1530.0))
	assert.Equal(t, "1.5k", f(float32(1530)))
	assert.Equal(t, "2k", f(2000))
	assert.Equal(t, "2k", f(int64(2000)))
	assert.Equal(t, "hello", f("hello"))
}
