package pattern

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/artgrid/internal/palette"
	"github.com/vovakirdan/artgrid/internal/rng"
)

// DrawFractal paints light rays from the tile centre towards an orbiting
// target, each with a glow wash and a pulsing highlight at the target.
func DrawFractal(dc *gg.Context, w, h float64, opts Options) {
	opts = opts.prepare(3)
	r := rng.New(opts.Seed)
	p := palette.Lookup(opts.Palette)
	c := float64(opts.Complexity)
	t := opts.Time

	fillBackground(dc, p.Background())

	var rays int
	if opts.DesignerMode {
		rays = 1 + opts.Complexity/3
	} else {
		rays = 1 + r.Intn(3)
	}

	cx, cy := w*0.5, h*0.5
	for i := 0; i < rays; i++ {
		fi := float64(i)
		targetX := cx + math.Sin(t*0.8+fi*2)*(w*0.3)
		targetY := cy + math.Cos(t*0.6+fi*1.5)*(h*0.3)

		var length, width, intensity float64
		if opts.DesignerMode {
			length = 80 + c*10
			width = 3 + c
			intensity = 0.6
		} else {
			length = 100 + r.Float()*60
			width = 4 + r.Float()*6
			intensity = 0.7 + r.Float()*0.3
		}
		angle := math.Atan2(targetY-cy, targetX-cx)
		idx := palette.AccentIndex(i)

		dc.Push()
		dc.Translate(cx, cy)
		dc.Rotate(angle)

		// Gradients are sampled in device space, so map the ray ends through
		// the current transform.
		x0, y0 := dc.TransformPoint(-length*0.5, 0)
		x1, y1 := dc.TransformPoint(length*0.5, 0)
		dc.DrawEllipse(0, 0, length*0.5, width*0.5)
		dc.SetFillStyle(linear(x0, y0, x1, y1,
			stop{0, p.Alpha(idx, 0)},
			stop{0.3, p.Alpha(idx, intensity*0.8)},
			stop{0.7, p.Alpha(idx, intensity)},
			stop{1, p.Alpha(idx, 0)},
		))
		dc.Fill()

		dc.DrawEllipse(0, 0, length*0.5, width*0.2)
		dc.SetColor(palette.WithAlpha(palette.White, intensity*0.4))
		dc.Fill()
		dc.Pop()

		wash(dc, w, h, radial(cx, cy, length*0.8,
			stop{0, p.Alpha(idx, intensity*0.2)},
			stop{0.5, p.Alpha(idx, intensity*0.1)},
			stop{1, p.Alpha(idx, 0)},
		))

		pulse := 8 + math.Sin(t*3+fi)*4
		wash(dc, w, h, radial(targetX, targetY, pulse,
			stop{0, palette.WithAlpha(palette.White, 0.8)},
			stop{0.3, p.Alpha(idx, 0.6)},
			stop{1, p.Alpha(idx, 0)},
		))
	}

	if opts.DesignerMode || opts.Complexity <= 5 {
		return
	}

	for i := 0; i < 8; i++ {
		fi := float64(i)
		px := cx + math.Sin(t+fi*0.8)*40
		py := cy + math.Cos(t*0.8+fi)*40
		size := 2 + math.Sin(t*2+fi)
		dot(dc, px, py, size, p.Alpha(2, 0.3))
	}
}
