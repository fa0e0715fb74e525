// Package config provides the grid settings object and the YAML-based
// application configuration around it.
package config

import (
	"github.com/vovakirdan/artgrid/internal/anim"
	"github.com/vovakirdan/artgrid/internal/palette"
	"github.com/vovakirdan/artgrid/internal/pattern"
	"github.com/vovakirdan/artgrid/internal/tiles"
)

// Grid size limits (tiles per row and column).
const (
	MinGridSize = 2
	MaxGridSize = 8
)

// Settings is the grid-level settings object shared by every front end.
type Settings struct {
	GridSize       int     `yaml:"grid_size"`
	Palette        string  `yaml:"palette"`
	Complexity     int     `yaml:"complexity"`
	AnimationSpeed float64 `yaml:"animation_speed"`
	IsAnimating    bool    `yaml:"is_animating"`
	DesignerMode   bool    `yaml:"designer_mode"`
	Seed           uint32  `yaml:"seed"` // 0 = not set
}

// Config is the full application configuration file.
type Config struct {
	Settings Settings      `yaml:"settings"`
	Render   RenderConfig  `yaml:"render"`
	Live     LiveConfig    `yaml:"live"`
	Export   ExportConfig  `yaml:"export"`
	Server   ServerConfig  `yaml:"server"`
	Storage  StorageConfig `yaml:"storage"`
}

// RenderConfig controls still-image composition.
type RenderConfig struct {
	TileSize int `yaml:"tile_size"`
	Gap      int `yaml:"gap"`
	Padding  int `yaml:"padding"`
}

// LiveConfig controls the interactive viewers.
type LiveConfig struct {
	FPS        int `yaml:"fps"`
	RenderSize int `yaml:"render_size"` // tile edge rendered before downscaling
}

// ExportConfig controls file output.
type ExportConfig struct {
	Dir       string `yaml:"dir"`
	Frames    int    `yaml:"frames"`
	FrameRate int    `yaml:"frame_rate"`
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleMinutes int    `yaml:"idle_minutes"`
}

// StorageConfig locates the history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// DefaultSettings returns the settings a fresh session starts with.
func DefaultSettings() Settings {
	return Settings{
		GridSize:       4,
		Palette:        palette.Default,
		Complexity:     4,
		AnimationSpeed: anim.DefaultSpeed,
	}
}

// Normalize clamps every field to its supported range.
func (s Settings) Normalize() Settings {
	s.GridSize = clampI(s.GridSize, MinGridSize, MaxGridSize)
	s.Palette = palette.Resolve(s.Palette)
	s.Complexity = pattern.ClampComplexity(s.Complexity)
	s.AnimationSpeed = anim.ClampSpeed(s.AnimationSpeed)
	return s
}

// Count returns the number of tiles in the grid.
func (s Settings) Count() int {
	n := clampI(s.GridSize, MinGridSize, MaxGridSize)
	return n * n
}

// TileOptions converts the settings into tile batch options.
func (s Settings) TileOptions() tiles.Options {
	return tiles.Options{
		Seed:         s.Seed,
		Palette:      s.Palette,
		Complexity:   s.Complexity,
		DesignerMode: s.DesignerMode,
	}
}

// Specs generates the tile batch for the settings.
func (s Settings) Specs() []tiles.Spec {
	return tiles.Generate(s.Count(), s.TileOptions())
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
