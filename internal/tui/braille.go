package tui

import "github.com/charmbracelet/lipgloss"

// brailleBuf is a 2x4-per-cell micro-pixel canvas. Each cell carries the
// braille dot mask plus the color of the last feature that touched it.
type brailleBuf struct {
	w, h int        // in cells
	m    [][]uint8  // per-cell 8-bit mask
	c    [][]string // per-cell foreground hex color, "" for default
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	c := make([][]string, h)
	for i := range m {
		m[i] = make([]uint8, w)
		c[i] = make([]string, w)
	}
	return &brailleBuf{w: w, h: h, m: m, c: c}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, col string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.c[cy][cx] = col
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, col string) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// toLines renders the canvas, styling runs of equally-colored cells together
// to keep the escape-sequence overhead down.
func (b *brailleBuf) toLines() []string {
	styles := map[string]lipgloss.Style{}
	styleFor := func(col string) lipgloss.Style {
		s, ok := styles[col]
		if !ok {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color(col))
			styles[col] = s
		}
		return s
	}
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var line string
		runCol := ""
		var run []rune
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runCol == "" {
				line += string(run)
			} else {
				line += styleFor(runCol).Render(string(run))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			r := ' '
			col := ""
			if mask != 0 {
				r = rune(0x2800 + int(mask))
				col = b.c[y][x]
			}
			if col != runCol {
				flush()
				runCol = col
			}
			run = append(run, r)
		}
		flush()
		out[y] = line
	}
	return out
}
