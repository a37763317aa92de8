// Package colorscale provides a linear color scale over a numeric domain and
// a contrast-based text color picker.
package colorscale

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Scale interpolates between color stops spread evenly across a numeric
// domain. Interpolation happens in Lab space so the ramp stays perceptually
// even. A Scale is immutable once constructed.
type Scale struct {
	domain [2]float64
	colors []colorful.Color
}

// Stop is a labeled sample of a scale, used for legend swatches.
type Stop struct {
	Value float64
	Color colorful.Color
}

// NewLinear builds a scale mapping domain[0]..domain[1] onto the given
// colors. At least two colors are required and the domain must be ascending
// and non-degenerate.
func NewLinear(domain [2]float64, colors ...colorful.Color) (*Scale, error) {
	if len(colors) < 2 {
		return nil, errors.New("colorscale: need at least two colors")
	}
	if !(domain[1] > domain[0]) {
		return nil, fmt.Errorf("colorscale: invalid domain [%g, %g]", domain[0], domain[1])
	}
	cs := make([]colorful.Color, len(colors))
	copy(cs, colors)
	return &Scale{domain: domain, colors: cs}, nil
}

// MustLinear is NewLinear that panics on error, for static ramps.
func MustLinear(domain [2]float64, colors ...colorful.Color) *Scale {
	s, err := NewLinear(domain, colors...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Scale) Domain() [2]float64 { return s.domain }

// At returns the color for v. Values outside the domain clamp to the ends.
func (s *Scale) At(v float64) colorful.Color {
	t := (v - s.domain[0]) / (s.domain[1] - s.domain[0])
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	seg := t * float64(len(s.colors)-1)
	i := int(seg)
	if i >= len(s.colors)-1 {
		return s.colors[len(s.colors)-1]
	}
	return s.colors[i].BlendLab(s.colors[i+1], seg-float64(i)).Clamped()
}

// Stops samples the scale at n evenly spaced values across the domain,
// endpoints included. n below 2 is treated as 2.
func (s *Scale) Stops(n int) []Stop {
	if n < 2 {
		n = 2
	}
	out := make([]Stop, n)
	for i := 0; i < n; i++ {
		v := s.domain[0] + (s.domain[1]-s.domain[0])*float64(i)/float64(n-1)
		out[i] = Stop{Value: v, Color: s.At(v)}
	}
	return out
}
