package pattern

import (
	"image"

	"github.com/fogleman/gg"
)

// Draw dispatches to the generator for typ. Unknown types draw the pixel
// pattern.
func Draw(dc *gg.Context, w, h float64, typ Type, opts Options) {
	Lookup(typ)(dc, w, h, opts)
}

// Render allocates a w x h surface and draws typ onto it.
func Render(typ Type, w, h int, opts Options) *image.RGBA {
	dc := gg.NewContext(w, h)
	Draw(dc, float64(w), float64(h), typ, opts)
	return dc.Image().(*image.RGBA)
}
