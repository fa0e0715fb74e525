package pattern

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/artgrid/internal/palette"
	"github.com/vovakirdan/artgrid/internal/rng"
)

// DrawGrain scatters small translucent dots that wobble slightly with time.
func DrawGrain(dc *gg.Context, w, h float64, opts Options) {
	opts = opts.prepare(5)
	r := rng.New(opts.Seed)
	p := palette.Lookup(opts.Palette)
	t := opts.Time

	fillBackground(dc, p.Background())

	density := opts.Complexity * 200
	size := 1.0
	if opts.DesignerMode {
		density = opts.Complexity * 100
	} else {
		size = 1 + r.Float()*2
	}

	for i := 0; i < density; i++ {
		fi := float64(i)
		x := r.Float() * w
		y := r.Float() * h
		idx := 1 + r.Intn(palette.Size-1)

		ax := x + math.Sin(t*0.5+fi*0.1)*2
		ay := y + math.Cos(t*0.3+fi*0.15)*2

		var alpha float64
		if opts.DesignerMode {
			alpha = 0.1 + r.Float()*0.2
		} else {
			alpha = 0.2 + r.Float()*0.4
		}
		dot(dc, ax, ay, size, p.Alpha(idx, alpha))
	}

	if !opts.DesignerMode {
		return
	}

	wash(dc, w, h, radial(w/2, h/2, math.Max(w, h)*0.7,
		stop{0, palette.WithAlpha(palette.White, 0.02)},
		stop{1, palette.WithAlpha(palette.Black, 0.05)},
	))
}
