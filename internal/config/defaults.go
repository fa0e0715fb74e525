package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/artgrid.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the hardcoded configuration used when no file and no
// embedded default can be read.
func DefaultConfig() Config {
	return Config{
		Settings: DefaultSettings(),
		Render: RenderConfig{
			TileSize: 320,
			Gap:      8,
			Padding:  16,
		},
		Live: LiveConfig{
			FPS:        12,
			RenderSize: 96,
		},
		Export: ExportConfig{
			Dir:       ".",
			Frames:    48,
			FrameRate: 12,
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleMinutes: 30,
		},
		Storage: StorageConfig{
			DBPath: "~/.artgrid/artgrid.db",
		},
	}
}

// IdleTimeout returns the server idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	if s.IdleMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(s.IdleMinutes) * time.Minute
}
