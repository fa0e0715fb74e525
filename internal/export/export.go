// Package export writes rendered grids, tiles, cards and animations to disk.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vovakirdan/artgrid/internal/pattern"
)

// Kind classifies an exported file.
type Kind string

const (
	KindGrid      Kind = "grid"
	KindCard      Kind = "card"
	KindTile      Kind = "tile"
	KindAnimation Kind = "animation"
)

// seedPart renders a seed for file names; unseeded grids have no stable seed.
func seedPart(seed uint32) string {
	if seed == 0 {
		return "unseeded"
	}
	return strconv.FormatUint(uint64(seed), 10)
}

// stamp formats t as UTC minutes, e.g. 2024-05-01-13-37.
func stamp(t time.Time) string {
	return t.UTC().Format("2006-01-02-15-04")
}

// GridFilename names a full-grid PNG export.
func GridFilename(seed uint32, t time.Time) string {
	return fmt.Sprintf("generative-artwork-%s-%s.png", seedPart(seed), stamp(t))
}

// CardFilename names a collectible card export.
func CardFilename(seed uint32, t time.Time) string {
	return fmt.Sprintf("generative-card-%s-%s.png", seedPart(seed), stamp(t))
}

// TileFilename names a single tile export.
func TileFilename(typ pattern.Type, seed uint32, t time.Time) string {
	return fmt.Sprintf("generative-art-%s-%s-%s.png", typ, seedPart(seed), t.UTC().Format("2006-01-02"))
}

// AnimationFilename names an animated export.
func AnimationFilename(seed uint32, t time.Time) string {
	return fmt.Sprintf("generative-animation-%s-%s.gif", seedPart(seed), stamp(t))
}

// create opens path for writing, creating parent directories.
func create(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("export: cannot create directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("export: cannot create %s: %w", path, err)
	}
	return f, nil
}

// WritePNG encodes img as PNG at path.
func WritePNG(path string, img image.Image) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("export: cannot encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: cannot close %s: %w", path, err)
	}
	return nil
}
