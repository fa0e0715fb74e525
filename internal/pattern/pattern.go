// Package pattern implements the five deterministic tile generators and the
// router that selects between them.
//
// Every generator paints a complete frame onto a gg.Context. The output is a
// pure function of (type, width, height, Options): each call seeds its own
// rng.Mulberry32 from Options.Seed and reads nothing else.
package pattern

import (
	"github.com/fogleman/gg"

	"github.com/vovakirdan/artgrid/internal/palette"
)

// Type names a pattern generator.
type Type string

const (
	Pixel    Type = "pixel"
	Wave     Type = "wave"
	Fractal  Type = "fractal"
	Diagonal Type = "diagonal"
	Grain    Type = "grain"
)

// Complexity bounds.
const (
	MinComplexity = 0
	MaxComplexity = 10
)

// Options fully determine one frame together with the pattern type.
type Options struct {
	Seed         uint32  // 0 selects the generator's own default seed
	Palette      string  // unknown names render with palette.Default
	Complexity   int     // clamped to [MinComplexity, MaxComplexity]
	DesignerMode bool    // calmer, lower-intensity variant
	Time         float64 // seconds of animation time
}

// DefaultOptions mirrors the application defaults.
func DefaultOptions() Options {
	return Options{
		Palette:    palette.Default,
		Complexity: 4,
	}
}

// ClampComplexity limits c to the supported range.
func ClampComplexity(c int) int {
	if c < MinComplexity {
		return MinComplexity
	}
	if c > MaxComplexity {
		return MaxComplexity
	}
	return c
}

// Normalize clamps complexity and resolves the palette name.
func (o Options) Normalize() Options {
	o.Complexity = ClampComplexity(o.Complexity)
	o.Palette = palette.Resolve(o.Palette)
	if o.Time < 0 {
		o.Time = 0
	}
	return o
}

// prepare normalizes o and substitutes def for a zero seed.
func (o Options) prepare(def uint32) Options {
	o = o.Normalize()
	if o.Seed == 0 {
		o.Seed = def
	}
	return o
}

// Generator paints a full frame of size w x h onto dc.
type Generator func(dc *gg.Context, w, h float64, opts Options)

type entry struct {
	typ   Type
	label string
	gen   Generator
}

// registry lists generators in the order tiles cycle through them.
var registry = []entry{
	{Pixel, "Moving Lights", DrawPixel},
	{Wave, "Waveform", DrawWave},
	{Fractal, "Light Rays", DrawFractal},
	{Diagonal, "Diagonal Strata", DrawDiagonal},
	{Grain, "Soft Grain", DrawGrain},
}

// Types returns every pattern type in cycle order.
func Types() []Type {
	out := make([]Type, len(registry))
	for i, e := range registry {
		out[i] = e.typ
	}
	return out
}

// Label returns the human-readable name of typ, or typ itself if unknown.
func Label(typ Type) string {
	for _, e := range registry {
		if e.typ == typ {
			return e.label
		}
	}
	return string(typ)
}

// Known reports whether typ names a registered generator.
func Known(typ Type) bool {
	for _, e := range registry {
		if e.typ == typ {
			return true
		}
	}
	return false
}

// Lookup returns the generator for typ, falling back to the pixel generator.
func Lookup(typ Type) Generator {
	for _, e := range registry {
		if e.typ == typ {
			return e.gen
		}
	}
	return DrawPixel
}

// ParseType returns the type named s and whether it is registered.
// Unknown names yield Pixel, matching the router fallback.
func ParseType(s string) (Type, bool) {
	typ := Type(s)
	if Known(typ) {
		return typ, true
	}
	return Pixel, false
}
