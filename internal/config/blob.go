package config

import (
	"fmt"
	"math/rand/v2"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/artgrid/internal/palette"
	"github.com/vovakirdan/artgrid/internal/seed"
)

// MarshalBlob serialises settings into a text blob for storage.
func MarshalBlob(s Settings) (string, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode settings: %w", err)
	}
	return string(data), nil
}

// UnmarshalBlob decodes a settings blob. Fields absent from the blob keep
// their default values.
func UnmarshalBlob(blob string) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal([]byte(blob), &s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to decode settings: %w", err)
	}
	return s.Normalize(), nil
}

// Surprise returns s with a random grid size, palette, complexity, speed
// and a fresh seed. Play state and designer mode are kept.
func Surprise(s Settings, r *rand.Rand) Settings {
	names := palette.Names()
	s.GridSize = MinGridSize + r.IntN(MaxGridSize-MinGridSize+1)
	s.Palette = names[r.IntN(len(names))]
	s.Complexity = r.IntN(11)
	s.AnimationSpeed = 0.25 + r.Float64()*2.75
	s.Seed = seed.Generate()
	return s.Normalize()
}
