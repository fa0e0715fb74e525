package pattern

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/artgrid/internal/palette"
	"github.com/vovakirdan/artgrid/internal/rng"
)

// DrawWave paints horizontal sine strokes whose phase advances with time.
func DrawWave(dc *gg.Context, w, h float64, opts Options) {
	opts = opts.prepare(2)
	r := rng.New(opts.Seed)
	p := palette.Lookup(opts.Palette)
	c := float64(opts.Complexity)
	designer := opts.DesignerMode

	fillBackground(dc, p.Background())

	var lines int
	var ampBase float64
	if designer {
		lines = max(3, opts.Complexity)
		ampBase = 8 + c*2
	} else {
		lines = 4 + r.Intn(opts.Complexity)
		ampBase = 12 + r.Float()*(c*4)
	}

	jitter, alpha := 30.0, 0.9
	if designer {
		jitter, alpha = 15, 0.6
	}

	dc.Push()
	defer dc.Pop()
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapRound)

	for i := 0; i < lines; i++ {
		fi, fl := float64(i), float64(lines)

		var freq float64
		if designer {
			freq = 0.008 + c*0.001
		} else {
			freq = 0.004 + r.Float()*0.02
		}
		amp := ampBase * (0.6 + r.Float()*1.4) * (1 + fi/fl*0.5)
		offsetY := h/(fl+1)*(fi+1) + (r.Float()-0.5)*jitter

		var stroke float64
		if designer {
			stroke = 1 + c*0.2
		} else {
			stroke = 1.2 + r.Float()*3
		}
		phase := opts.Time*0.3 + r.Float()*2*math.Pi + fi

		for x := 0.0; x <= w; x++ {
			y := offsetY + math.Sin(x*freq+phase)*amp
			if x == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.SetColor(p.Alpha(palette.AccentIndex(i), alpha))
		dc.SetLineWidth(stroke)
		dc.Stroke()
	}

	if designer {
		return
	}

	wash(dc, w, h, linear(0, 0, 0, h,
		stop{0, palette.WithAlpha(palette.Black, 0.05)},
		stop{0.6, palette.WithAlpha(palette.Black, 0)},
		stop{1, palette.WithAlpha(palette.Black, 0.15)},
	))
}
