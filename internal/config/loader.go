package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search path.
const FileName = "artgrid.yaml"

// Load reads the application configuration.
// Search order: customPath -> ~/.artgrid/config.yaml -> ./configs/artgrid.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg.normalize(), nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if cfg, ok := readConfig(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := readConfig(filepath.Join("configs", FileName)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.normalize(), nil
}

func readConfig(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	return cfg.normalize(), true
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg Config) error {
	path = ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns ~/.artgrid/config.yaml, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".artgrid", "config.yaml")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func (c Config) normalize() Config {
	d := DefaultConfig()
	c.Settings = c.Settings.Normalize()
	if c.Render.TileSize <= 0 {
		c.Render.TileSize = d.Render.TileSize
	}
	if c.Render.Gap < 0 {
		c.Render.Gap = 0
	}
	if c.Render.Padding < 0 {
		c.Render.Padding = 0
	}
	if c.Live.FPS <= 0 {
		c.Live.FPS = d.Live.FPS
	}
	if c.Live.RenderSize <= 0 {
		c.Live.RenderSize = d.Live.RenderSize
	}
	if c.Export.Dir == "" {
		c.Export.Dir = d.Export.Dir
	}
	if c.Export.Frames <= 0 {
		c.Export.Frames = d.Export.Frames
	}
	if c.Export.FrameRate <= 0 {
		c.Export.FrameRate = d.Export.FrameRate
	}
	if c.Server.Address == "" {
		c.Server.Address = d.Server.Address
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = d.Storage.DBPath
	}
	return c
}
