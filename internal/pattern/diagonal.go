package pattern

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/artgrid/internal/palette"
	"github.com/vovakirdan/artgrid/internal/rng"
)

// DrawDiagonal paints soft translucent bands rotated about the tile centre.
func DrawDiagonal(dc *gg.Context, w, h float64, opts Options) {
	opts = opts.prepare(4)
	r := rng.New(opts.Seed)
	p := palette.Lookup(opts.Palette)

	fillBackground(dc, p.Background())

	var stripes int
	var angle float64 // degrees
	if opts.DesignerMode {
		stripes = opts.Complexity + 2
		angle = 45
	} else {
		stripes = 3 + r.Intn(opts.Complexity)
		angle = 30 + r.Float()*60
	}
	stripeWidth := math.Max(w, h) * 1.4 / float64(stripes)

	dc.Push()
	dc.RotateAbout(gg.Radians(angle+math.Sin(opts.Time*0.2)*5), w/2, h/2)

	for i := 0; i < stripes; i++ {
		x := -w*0.5 + float64(i)*stripeWidth
		idx := palette.AccentIndex(i)

		var alpha float64
		if opts.DesignerMode {
			alpha = 0.2 + float64(i)*0.1
		} else {
			alpha = 0.4 + r.Float()*0.4
		}

		// The band gradient runs across the stripe in rotated space.
		x0, y0 := dc.TransformPoint(x, 0)
		x1, y1 := dc.TransformPoint(x+stripeWidth, 0)
		dc.DrawRectangle(x, -h*0.5, stripeWidth, h*2)
		dc.SetFillStyle(linear(x0, y0, x1, y1,
			stop{0, p.Alpha(idx, 0)},
			stop{0.5, p.Alpha(idx, alpha)},
			stop{1, p.Alpha(idx, 0)},
		))
		dc.Fill()
	}

	dc.Pop()
}
