package pattern

import (
	"image/color"

	"github.com/fogleman/gg"
)

// stop is one colour stop of a gradient.
type stop struct {
	at float64
	c  color.Color
}

func addStops(g gg.Gradient, stops []stop) gg.Gradient {
	for _, s := range stops {
		g.AddColorStop(s.at, s.c)
	}
	return g
}

func radial(x, y, r float64, stops ...stop) gg.Gradient {
	return addStops(gg.NewRadialGradient(x, y, 0, x, y, r), stops)
}

func linear(x0, y0, x1, y1 float64, stops ...stop) gg.Gradient {
	return addStops(gg.NewLinearGradient(x0, y0, x1, y1), stops)
}

// fillBackground overwrites the whole surface with c.
func fillBackground(dc *gg.Context, c color.Color) {
	dc.Push()
	dc.Identity()
	dc.SetColor(c)
	dc.Clear()
	dc.Pop()
}

// wash fills the rectangle (0,0,w,h) with a pattern.
func wash(dc *gg.Context, w, h float64, p gg.Pattern) {
	dc.DrawRectangle(0, 0, w, h)
	dc.SetFillStyle(p)
	dc.Fill()
}

// dot fills a circle with a solid colour.
func dot(dc *gg.Context, x, y, r float64, c color.Color) {
	dc.DrawCircle(x, y, r)
	dc.SetColor(c)
	dc.Fill()
}
