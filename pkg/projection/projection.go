// Package projection maps geographic coordinates onto a pixel plane and fits
// projected content into a target rectangle.
package projection

import (
	"math"

	"github.com/paulmach/orb"
)

// maxLat is the Mercator latitude cutoff in degrees.
const maxLat = 85.05113

// Projection maps a lon/lat coordinate to a planar x/y coordinate with y
// growing downward (screen convention). Scale and translate are applied by
// Project itself; Fit configures both.
type Projection interface {
	Project(g orb.Point) orb.Point
	Scale() float64
	SetScale(s float64)
	Translate() orb.Point
	SetTranslate(t orb.Point)
}

// Inverter is implemented by projections that can map a planar coordinate
// back to lon/lat.
type Inverter interface {
	Invert(p orb.Point) orb.Point
}

// Box is a pixel rectangle as top-left and bottom-right corners. It is a
// value type: padding and fitting never modify the caller's copy.
type Box [2]orb.Point

func (b Box) Width() float64  { return b[1][0] - b[0][0] }
func (b Box) Height() float64 { return b[1][1] - b[0][1] }

// Pad returns a copy of b with all four edges moved inward by p.
func (b Box) Pad(p float64) Box {
	return Box{
		{b[0][0] + p, b[0][1] + p},
		{b[1][0] - p, b[1][1] - p},
	}
}

// Mercator is a spherical Mercator projection with an adjustable origin. The
// origin itself projects to the translate point, so recentering a dataset is
// a matter of constructing the projection around it.
type Mercator struct {
	origin    orb.Point
	scale     float64
	translate orb.Point
}

// NewMercator returns a Mercator centered on origin (lon/lat degrees) with
// scale 1 and translate (0,0). Scale is in pixels per radian.
func NewMercator(origin orb.Point) *Mercator {
	return &Mercator{origin: origin, scale: 1}
}

func (m *Mercator) Origin() orb.Point        { return m.origin }
func (m *Mercator) Scale() float64           { return m.scale }
func (m *Mercator) SetScale(s float64)       { m.scale = s }
func (m *Mercator) Translate() orb.Point     { return m.translate }
func (m *Mercator) SetTranslate(t orb.Point) { m.translate = t }

// Project maps lon/lat degrees to planar coordinates. Longitude is wrapped
// into the 360° window around the origin so datasets crossing the
// antimeridian stay contiguous; latitude is clamped to the Mercator cutoff.
func (m *Mercator) Project(g orb.Point) orb.Point {
	lon := wrapLon(g[0] - m.origin[0])
	lam := lon * math.Pi / 180
	phi := clampLat(g[1]) * math.Pi / 180
	phi0 := clampLat(m.origin[1]) * math.Pi / 180
	return orb.Point{
		m.scale*lam + m.translate[0],
		m.scale*(mercY(phi0)-mercY(phi)) + m.translate[1],
	}
}

// Invert maps a planar coordinate back to lon/lat degrees.
func (m *Mercator) Invert(p orb.Point) orb.Point {
	lam := (p[0] - m.translate[0]) / m.scale
	phi0 := clampLat(m.origin[1]) * math.Pi / 180
	y := mercY(phi0) - (p[1]-m.translate[1])/m.scale
	phi := 2*math.Atan(math.Exp(y)) - math.Pi/2
	return orb.Point{
		wrapLon(lam*180/math.Pi) + m.origin[0],
		phi * 180 / math.Pi,
	}
}

func mercY(phi float64) float64 {
	return math.Log(math.Tan(math.Pi/4 + phi/2))
}

func clampLat(lat float64) float64 {
	if lat > maxLat {
		return maxLat
	}
	if lat < -maxLat {
		return -maxLat
	}
	return lat
}

// wrapLon wraps into the half-open window (-180, 180], keeping +180 distinct
// from -180 so a world-spanning bound does not collapse to a single meridian.
func wrapLon(lon float64) float64 {
	w := math.Mod(lon+180, 360)
	if w < 0 {
		w += 360
	}
	if w == 0 && lon > 0 {
		return 180
	}
	return w - 180
}
