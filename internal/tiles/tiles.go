// Package tiles builds ordered batches of tile specifications for a grid.
package tiles

import (
	"fmt"

	"github.com/vovakirdan/artgrid/internal/pattern"
	"github.com/vovakirdan/artgrid/internal/seed"
)

// Spec describes one tile of a batch. Specs are never modified after a
// batch is generated; regeneration replaces the whole batch.
type Spec struct {
	ID           string
	Type         pattern.Type
	Seed         uint32
	Label        string
	Palette      string
	Complexity   int
	DesignerMode bool
}

// Options are the grid-wide settings shared by every tile in a batch.
type Options struct {
	Seed         uint32 // base seed; 0 draws an independent random seed per tile
	Palette      string
	Complexity   int
	DesignerMode bool
}

// Generate returns count specs, cycling through the pattern types in order.
// With a base seed tile i gets base+i; otherwise every tile gets a fresh
// random seed and the batch is not reproducible.
func Generate(count int, opts Options) []Spec {
	if count <= 0 {
		return []Spec{}
	}

	types := pattern.Types()
	specs := make([]Spec, 0, count)
	for i := 0; i < count; i++ {
		typ := types[i%len(types)]

		var s uint32
		if opts.Seed != 0 {
			s = opts.Seed + uint32(i)
		} else {
			s = seed.Generate()
		}

		specs = append(specs, Spec{
			ID:           fmt.Sprintf("%s-%d-%d", typ, s, i),
			Type:         typ,
			Seed:         s,
			Label:        pattern.Label(typ),
			Palette:      opts.Palette,
			Complexity:   opts.Complexity,
			DesignerMode: opts.DesignerMode,
		})
	}
	return specs
}

// RenderOptions returns the pattern options for drawing s at time t.
func (s Spec) RenderOptions(t float64) pattern.Options {
	return pattern.Options{
		Seed:         s.Seed,
		Palette:      s.Palette,
		Complexity:   s.Complexity,
		DesignerMode: s.DesignerMode,
		Time:         t,
	}
}

// PatternLabels lists the distinct labels of specs in first-seen order.
func PatternLabels(specs []Spec) []string {
	seen := make(map[string]bool, len(specs))
	var labels []string
	for _, s := range specs {
		if seen[s.Label] {
			continue
		}
		seen[s.Label] = true
		labels = append(labels, s.Label)
	}
	return labels
}
