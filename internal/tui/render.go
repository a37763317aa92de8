package tui

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb"

	"vizkit/pkg/projection"
)

// fitPadding keeps drawn content off the canvas edge, in micro-pixels.
const fitPadding = 2

// renderMap fits the projection to the current viewport and draws every
// feature onto a braille canvas, colored by the feature ramp.
func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)
	if m.fc != nil && len(m.fc.Features) > 0 {
		wMic, hMic := w*2, h*4
		box := projection.Box{{0, 0}, {float64(wMic - 1), float64(hMic - 1)}}
		err := projection.Fit(m.merc, m.fc, box, projection.FitOptions{Padding: fitPadding, Center: true})
		if err == nil {
			for i, f := range m.fc.Features {
				if f == nil || f.Geometry == nil {
					continue
				}
				m.drawGeometry(br, f.Geometry, m.colorFor(i), wMic, hMic)
			}
		}
	}
	lines := br.toLines()

	// Hover highlight: mark the hovered cell. The styled row may carry ANSI
	// sequences, so the line is rebuilt from the raw canvas first.
	if m.hovering && m.hoverCellY >= 0 && m.hoverCellY < len(lines) {
		cx, cy := m.hoverCellX, m.hoverCellY
		if cx >= 0 && cx < w {
			raw := make([]rune, w)
			for x := 0; x < w; x++ {
				mask := br.m[cy][x]
				if mask == 0 {
					raw[x] = ' '
				} else {
					raw[x] = rune(0x2800 + int(mask))
				}
			}
			circle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("◯")
			lines[cy] = string(raw[:cx]) + circle + string(raw[cx+1:])
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) drawGeometry(br *brailleBuf, g orb.Geometry, col string, wMic, hMic int) {
	switch t := g.(type) {
	case orb.Point:
		x, y := m.screenMicro(t, wMic, hMic)
		br.setPixel(x, y, col)
	case orb.MultiPoint:
		for _, p := range t {
			x, y := m.screenMicro(p, wMic, hMic)
			br.setPixel(x, y, col)
		}
	case orb.LineString:
		m.drawPolyline(br, t, col, wMic, hMic)
	case orb.MultiLineString:
		for _, ls := range t {
			m.drawPolyline(br, ls, col, wMic, hMic)
		}
	case orb.Ring:
		m.drawRing(br, t, col, wMic, hMic, false)
	case orb.Polygon:
		for ri, r := range t {
			// fill the outer ring only; holes get edges
			m.drawRing(br, r, col, wMic, hMic, ri == 0)
		}
	case orb.MultiPolygon:
		for _, p := range t {
			m.drawGeometry(br, p, col, wMic, hMic)
		}
	case orb.Collection:
		for _, c := range t {
			m.drawGeometry(br, c, col, wMic, hMic)
		}
	}
}

func (m Model) drawPolyline(br *brailleBuf, ls orb.LineString, col string, wMic, hMic int) {
	for i := 1; i < len(ls); i++ {
		x0, y0 := m.screenMicro(ls[i-1], wMic, hMic)
		x1, y1 := m.screenMicro(ls[i], wMic, hMic)
		br.drawLineMicro(x0, y0, x1, y1, col)
	}
}

func (m Model) drawRing(br *brailleBuf, r orb.Ring, col string, wMic, hMic int, fill bool) {
	if len(r) < 3 {
		return
	}
	pts := make([][2]int, len(r))
	for i, p := range r {
		x, y := m.screenMicro(p, wMic, hMic)
		pts[i] = [2]int{x, y}
	}
	if fill {
		fillRing(br, pts, col, hMic)
	}
	for i := 0; i < len(pts); i++ {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		br.drawLineMicro(a[0], a[1], b[0], b[1], col)
	}
}

// fillRing fills a ring with an even-odd scanline pass on the microgrid.
func fillRing(br *brailleBuf, ring [][2]int, col string, hMic int) {
	for y := 0; y < hMic; y++ {
		var xs []int
		for i := 0; i < len(ring); i++ {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			if a[1] == b[1] { // horizontal edge: skip
				continue
			}
			y0, y1 := a[1], b[1]
			x0, x1 := a[0], b[0]
			if (y >= y0 && y < y1) || (y >= y1 && y < y0) {
				t := float64(y-y0) / float64(y1-y0)
				xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			lo, hi := xs[i], xs[i+1]
			if lo > hi {
				lo, hi = hi, lo
			}
			for x := max(0, lo); x <= hi; x++ {
				br.setPixel(x, y, col)
			}
		}
	}
}

// screenMicro projects lon/lat onto the microgrid, applying zoom around the
// canvas center and the pan offsets.
func (m Model) screenMicro(g orb.Point, wMic, hMic int) (int, int) {
	p := m.merc.Project(g)
	cx, cy := float64(wMic)/2, float64(hMic)/2
	zx := cx + (p[0]-cx)*m.zoom + float64(m.offsetX*2)
	zy := cy + (p[1]-cy)*m.zoom + float64(m.offsetY*4)
	return int(math.Round(zx)), int(math.Round(zy))
}

// cellToLonLat converts a map cell back to lon/lat by undoing zoom and pan,
// then inverting the projection.
func (m Model) cellToLonLat(cellX, cellY, w, h int) (float64, float64, bool) {
	if m.fc == nil || m.zoom <= 0 || m.merc.Scale() == 0 {
		return 0, 0, false
	}
	wMic, hMic := w*2, h*4
	mx := float64(cellX*2) + 0.5
	my := float64(cellY*4) + 1.5
	cx, cy := float64(wMic)/2, float64(hMic)/2
	px := cx + (mx-float64(m.offsetX*2)-cx)/m.zoom
	py := cy + (my-float64(m.offsetY*4)-cy)/m.zoom
	g := m.merc.Invert(orb.Point{px, py})
	return g[0], g[1], true
}
