// Package legend renders a color-scale legend through go-chart's renderer,
// so the same code can target PNG or SVG output.
package legend

import (
	"errors"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"vizkit/pkg/colorscale"
	"vizkit/pkg/format"
)

const pad = 10

// Options configures Render. The zero value renders a 480x60 PNG with six
// swatches labeled in SI notation.
type Options struct {
	Width     int
	Height    int
	Swatches  int
	Title     string
	Formatter func(float64) string
	Provider  chart.RendererProvider
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 480
	}
	if o.Height <= 0 {
		o.Height = 60
	}
	if o.Swatches < 2 {
		o.Swatches = 6
	}
	if o.Formatter == nil {
		o.Formatter = func(v float64) string { return format.SI(v, 1) }
	}
	if o.Provider == nil {
		o.Provider = chart.PNG
	}
	return o
}

// Render draws a horizontal swatch legend for s to w. Each swatch carries its
// domain value, labeled in black or white depending on swatch brightness.
func Render(w io.Writer, s *colorscale.Scale, opts Options) error {
	if s == nil {
		return errors.New("legend: nil scale")
	}
	opts = opts.withDefaults()

	r, err := opts.Provider(opts.Width, opts.Height)
	if err != nil {
		return err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	r.SetDPI(chart.DefaultDPI)
	r.SetFont(font)

	fillRect(r, 0, 0, opts.Width, opts.Height, drawing.ColorWhite)

	top := pad
	if opts.Title != "" {
		r.SetFontSize(12)
		r.SetFontColor(drawing.ColorBlack)
		tb := r.MeasureText(opts.Title)
		r.Text(opts.Title, pad, top+tb.Height())
		top += tb.Height() + 6
	}

	stops := s.Stops(opts.Swatches)
	sw := (opts.Width - 2*pad) / len(stops)
	bottom := opts.Height - pad
	for i, stop := range stops {
		x := pad + i*sw
		fillRect(r, x, top, x+sw, bottom, toDrawing(stop.Color))

		label := opts.Formatter(stop.Value)
		r.SetFontSize(10)
		r.SetFontColor(toDrawing(colorscale.TextColor(stop.Color)))
		tb := r.MeasureText(label)
		tx := x + (sw-tb.Width())/2
		ty := top + (bottom-top+tb.Height())/2
		r.Text(label, tx, ty)
	}

	return r.Save(w)
}

func fillRect(r chart.Renderer, x0, y0, x1, y1 int, c drawing.Color) {
	r.SetFillColor(c)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.Fill()
}

func toDrawing(c colorful.Color) drawing.Color {
	cr, cg, cb := c.RGB255()
	return drawing.Color{R: cr, G: cg, B: cb, A: 255}
}
