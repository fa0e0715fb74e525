// Package palette holds the fixed table of named five-colour palettes.
// Index 0 of every palette is the background; indices 1..4 are accents.
package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Size is the number of colours in every palette.
const Size = 5

// Default is the palette used for unknown names.
const Default = "Cool"

// Palette is a named, ordered set of five opaque colours.
type Palette struct {
	Name   string
	Hex    [Size]string
	Colors [Size]color.NRGBA
}

// table lists the palettes in display order.
var table = []struct {
	name string
	hex  [Size]string
}{
	{"Warm", [Size]string{"#1a1a2e", "#ff6b6b", "#ffa726", "#ffcc80", "#ffe0b2"}},
	{"Cool", [Size]string{"#0f172a", "#06b6d4", "#0ea5e9", "#3b82f6", "#6366f1"}},
	{"Neon", [Size]string{"#0a0a0a", "#ff0080", "#00ff80", "#8000ff", "#ff8000"}},
	{"Pastel", [Size]string{"#f8f9fa", "#ffb3ba", "#bae1ff", "#baffc9", "#ffffba"}},
	{"Monochrome", [Size]string{"#1f2937", "#4b5563", "#6b7280", "#9ca3af", "#d1d5db"}},
}

var (
	byName = make(map[string]Palette, len(table))
	names  = make([]string, 0, len(table))
)

func init() {
	for _, entry := range table {
		p := Palette{Name: entry.name, Hex: entry.hex}
		for i, h := range entry.hex {
			c, err := ParseHex(h)
			if err != nil {
				panic(fmt.Sprintf("palette: %s[%d]: %v", entry.name, i, err))
			}
			p.Colors[i] = c
		}
		byName[entry.name] = p
		names = append(names, entry.name)
	}
}

// ParseHex parses a "#rrggbb" string into an opaque colour.
func ParseHex(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Lookup returns the palette called name, or the default palette.
func Lookup(name string) Palette {
	if p, ok := byName[name]; ok {
		return p
	}
	return byName[Default]
}

// Resolve returns name when it is a known palette and Default otherwise.
func Resolve(name string) string {
	if _, ok := byName[name]; ok {
		return name
	}
	return Default
}

// Exists reports whether name is a known palette.
func Exists(name string) bool {
	_, ok := byName[name]
	return ok
}

// Names returns the palette names in display order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Next returns the palette after name in display order, wrapping around.
func Next(name string) string {
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return Default
}

// Background returns colour 0.
func (p Palette) Background() color.NRGBA {
	return p.Colors[0]
}

// AccentIndex maps a loop index onto the accent slots 1..4.
func AccentIndex(i int) int {
	if i < 0 {
		i = -i
	}
	return 1 + i%(Size-1)
}

// Accent returns the accent colour for loop index i.
func (p Palette) Accent(i int) color.NRGBA {
	return p.Colors[AccentIndex(i)]
}

// Alpha returns colour idx with its alpha set from a [0,1] float.
// Out of range values are clamped.
func (p Palette) Alpha(idx int, alpha float64) color.NRGBA {
	return WithAlpha(p.Colors[idx], alpha)
}

// WithAlpha returns c with alpha taken from a [0,1] float, clamped.
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	switch {
	case alpha <= 0:
		c.A = 0
	case alpha >= 1:
		c.A = 255
	default:
		c.A = uint8(alpha*255 + 0.5)
	}
	return c
}

// White is the highlight colour used by the light generators.
var White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Black is used by vignette overlays.
var Black = color.NRGBA{A: 255}
