package pattern

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/artgrid/internal/palette"
	"github.com/vovakirdan/artgrid/internal/rng"
)

// DrawPixel paints drifting light sources with a sparse particle field.
func DrawPixel(dc *gg.Context, w, h float64, opts Options) {
	opts = opts.prepare(1)
	r := rng.New(opts.Seed)
	p := palette.Lookup(opts.Palette)
	c := float64(opts.Complexity)
	t := opts.Time

	fillBackground(dc, p.Background())

	var lights int
	if opts.DesignerMode {
		lights = 2 + opts.Complexity
	} else {
		lights = 3 + r.Intn(opts.Complexity)
	}

	for i := 0; i < lights; i++ {
		fi := float64(i)

		// Bases stay inside the central 60% of the tile.
		baseX := (r.Float()*0.6 + 0.2) * w
		baseY := (r.Float()*0.6 + 0.2) * h

		var radius, speed float64
		if opts.DesignerMode {
			radius = 20 + c*5
			speed = 0.3
		} else {
			radius = 30 + r.Float()*50
			speed = 0.2 + r.Float()*0.4
		}
		phase := r.Float() * 2 * math.Pi

		x := baseX + math.Cos(t*speed+phase+fi)*radius
		y := baseY + math.Sin(t*speed*0.7+phase+fi*1.3)*radius

		var maxRadius, intensity float64
		if opts.DesignerMode {
			maxRadius = 80 + c*10
			intensity = 0.3
		} else {
			maxRadius = 100 + r.Float()*80
			intensity = 0.4 + r.Float()*0.3
		}
		idx := palette.AccentIndex(i)

		wash(dc, w, h, radial(x, y, maxRadius,
			stop{0, p.Alpha(idx, intensity)},
			stop{0.3, p.Alpha(idx, intensity*0.6)},
			stop{0.6, p.Alpha(idx, intensity*0.2)},
			stop{1, p.Alpha(idx, 0)},
		))
		wash(dc, w, h, radial(x, y, maxRadius*0.2,
			stop{0, palette.WithAlpha(palette.White, intensity*0.3)},
			stop{0.5, p.Alpha(idx, intensity*0.5)},
			stop{1, p.Alpha(idx, 0)},
		))
	}

	if opts.DesignerMode {
		return
	}

	particles := 20 + opts.Complexity*5
	for i := 0; i < particles; i++ {
		fi := float64(i)
		px := math.Mod(r.Float()*w+math.Sin(t*0.5+fi)*20, w)
		py := math.Mod(r.Float()*h+math.Cos(t*0.3+fi)*15, h)
		size := 1 + r.Float()*2
		alpha := 0.1 + math.Sin(t+fi)*0.05
		dot(dc, px, py, size, p.Alpha(palette.AccentIndex(i), alpha))
	}
}
