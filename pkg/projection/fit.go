package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var (
	// ErrEmptyCollection is returned when the feature collection has no
	// geometry to fit.
	ErrEmptyCollection = errors.New("projection: empty feature collection")
	// ErrDegenerateBounds is returned when the projected bounds collapse to
	// a line or point, which would make the fitted scale non-finite.
	ErrDegenerateBounds = errors.New("projection: degenerate bounds")
)

// FitOptions configures Fit. The zero value pads nothing and aligns the
// content to the top-left corner of the target box.
type FitOptions struct {
	// Padding moves all four edges of the target box inward before fitting.
	Padding float64
	// Center centers the content within the target box on the axis that is
	// not the tighter constraint.
	Center bool
}

// Fit configures p's scale and translate so that the projected bounds of fc
// fill target. The axis with the tighter constraint determines the scale, so
// the content never exceeds the box on either axis; the other axis is
// top-left aligned, or centered when opts.Center is set.
//
// p is reconfigured in place: its scale and translate are reset before the
// bounds are measured, so prior configuration never leaks into the result.
func Fit(p Projection, fc *geojson.FeatureCollection, target Box, opts FitOptions) error {
	if fc == nil || len(fc.Features) == 0 {
		return ErrEmptyCollection
	}
	if opts.Padding > 0 {
		target = target.Pad(opts.Padding)
	}

	p.SetScale(1)
	p.SetTranslate(orb.Point{0, 0})

	left, top := math.Inf(1), math.Inf(1)
	right, bottom := math.Inf(-1), math.Inf(-1)
	corners := 0
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		b := f.Geometry.Bound()
		for _, g := range [2]orb.Point{b.Min, b.Max} {
			pt := p.Project(g)
			left = math.Min(left, pt[0])
			right = math.Max(right, pt[0])
			top = math.Min(top, pt[1])
			bottom = math.Max(bottom, pt[1])
			corners++
		}
	}
	if corners == 0 {
		return ErrEmptyCollection
	}
	start := Box{{left, top}, {right, bottom}}
	if !(start.Width() > 0) || !(start.Height() > 0) {
		return fmt.Errorf("%w: projected extent %.6g x %.6g", ErrDegenerateBounds, start.Width(), start.Height())
	}

	widthDetermined := start.Width()/start.Height() > target.Width()/target.Height()
	var scale float64
	if widthDetermined {
		scale = target.Width() / start.Width()
	} else {
		scale = target.Height() / start.Height()
	}
	tx := target[0][0] - start[0][0]*scale
	ty := target[0][1] - start[0][1]*scale
	if opts.Center {
		if widthDetermined {
			ty -= (ty + start[1][1]*scale - target[1][1]) / 2
		} else {
			tx -= (tx + start[1][0]*scale - target[1][0]) / 2
		}
	}

	p.SetScale(scale)
	p.SetTranslate(orb.Point{tx, ty})
	return nil
}
