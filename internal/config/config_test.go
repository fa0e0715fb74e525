package config

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.GridSize != 4 || s.Palette != "Cool" || s.Complexity != 4 || s.AnimationSpeed != 1.0 {
		t.Errorf("DefaultSettings() = %+v", s)
	}
	if s.IsAnimating || s.DesignerMode || s.Seed != 0 {
		t.Errorf("DefaultSettings() = %+v, expected paused, non-designer, no seed", s)
	}
	if s.Count() != 16 {
		t.Errorf("Count() = %d, expected 16", s.Count())
	}
}

func TestNormalize(t *testing.T) {
	s := Settings{GridSize: 20, Palette: "Nope", Complexity: -1, AnimationSpeed: 9}.Normalize()
	if s.GridSize != MaxGridSize {
		t.Errorf("GridSize = %d, expected %d", s.GridSize, MaxGridSize)
	}
	if s.Palette != "Cool" {
		t.Errorf("Palette = %q, expected Cool", s.Palette)
	}
	if s.Complexity != 0 {
		t.Errorf("Complexity = %d, expected 0", s.Complexity)
	}
	if s.AnimationSpeed != 3 {
		t.Errorf("AnimationSpeed = %v, expected 3", s.AnimationSpeed)
	}
}

func TestSpecsFollowSettings(t *testing.T) {
	s := Settings{GridSize: 3, Palette: "Neon", Complexity: 6, Seed: 100}
	specs := s.Specs()
	if len(specs) != 9 {
		t.Fatalf("Specs() returned %d, expected 9", len(specs))
	}
	if specs[8].Seed != 108 || specs[0].Palette != "Neon" {
		t.Errorf("Specs() = %+v", specs)
	}
}

func TestParseQuery(t *testing.T) {
	s, err := ParseQuery("?seed=123&cols=6&palette=Warm&complexity=8&live=1&designer=1", DefaultSettings())
	if err != nil {
		t.Fatalf("ParseQuery() failed: %v", err)
	}
	if s.Seed != 123 || s.GridSize != 6 || s.Palette != "Warm" || s.Complexity != 8 {
		t.Errorf("ParseQuery() = %+v", s)
	}
	if !s.IsAnimating || !s.DesignerMode {
		t.Errorf("ParseQuery() flags = live %v designer %v", s.IsAnimating, s.DesignerMode)
	}
}

func TestParseQueryKeepsBaseAndClamps(t *testing.T) {
	base := DefaultSettings()
	base.Seed = 7
	s, err := ParseQuery("complexity=42&cols=abc&palette=Unknown&live=0", base)
	if err != nil {
		t.Fatalf("ParseQuery() failed: %v", err)
	}
	if s.Seed != 7 {
		t.Errorf("Seed = %d, expected base seed 7", s.Seed)
	}
	if s.GridSize != 4 {
		t.Errorf("GridSize = %d, expected 4", s.GridSize)
	}
	if s.Complexity != 10 {
		t.Errorf("Complexity = %d, expected 10", s.Complexity)
	}
	if s.Palette != "Cool" {
		t.Errorf("Palette = %q, expected Cool", s.Palette)
	}
	if s.IsAnimating {
		t.Error("live=0 should not enable animation")
	}
}

func TestParseQueryFullURL(t *testing.T) {
	s, err := ParseQuery("https://example.com/grid?seed=9&palette=Pastel", DefaultSettings())
	if err != nil {
		t.Fatalf("ParseQuery() failed: %v", err)
	}
	if s.Seed != 9 || s.Palette != "Pastel" {
		t.Errorf("ParseQuery() = %+v", s)
	}
}

func TestQueryRoundTrip(t *testing.T) {
	s := Settings{GridSize: 5, Palette: "Monochrome", Complexity: 2, AnimationSpeed: 1, IsAnimating: true, Seed: 4242}
	q := s.Query()
	if q != "seed=4242&cols=5&palette=Monochrome&complexity=2&live=1" {
		t.Errorf("Query() = %q", q)
	}

	back, err := ParseQuery(q, DefaultSettings())
	if err != nil {
		t.Fatalf("ParseQuery() failed: %v", err)
	}
	if back != s {
		t.Errorf("round trip = %+v, expected %+v", back, s)
	}
}

func TestQueryOmitsZeroSeed(t *testing.T) {
	if q := DefaultSettings().Query(); q != "cols=4&palette=Cool&complexity=4" {
		t.Errorf("Query() = %q", q)
	}
}

func TestBlobRoundTrip(t *testing.T) {
	s := Settings{GridSize: 3, Palette: "Neon", Complexity: 9, AnimationSpeed: 2.5, DesignerMode: true, Seed: 31337}
	blob, err := MarshalBlob(s)
	if err != nil {
		t.Fatalf("MarshalBlob() failed: %v", err)
	}
	back, err := UnmarshalBlob(blob)
	if err != nil {
		t.Fatalf("UnmarshalBlob() failed: %v", err)
	}
	if back != s {
		t.Errorf("UnmarshalBlob() = %+v, expected %+v", back, s)
	}
}

func TestBlobMergesOntoDefaults(t *testing.T) {
	s, err := UnmarshalBlob("palette: Warm\n")
	if err != nil {
		t.Fatalf("UnmarshalBlob() failed: %v", err)
	}
	want := DefaultSettings()
	want.Palette = "Warm"
	if s != want {
		t.Errorf("UnmarshalBlob() = %+v, expected %+v", s, want)
	}

	if _, err := UnmarshalBlob("grid_size: [1, 2"); err == nil {
		t.Error("UnmarshalBlob() expected error for malformed blob")
	}
}

func TestSurprise(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	base := DefaultSettings()
	base.IsAnimating = true
	for range 50 {
		s := Surprise(base, r)
		if s.GridSize < MinGridSize || s.GridSize > MaxGridSize {
			t.Fatalf("GridSize = %d out of range", s.GridSize)
		}
		if s.Complexity < 0 || s.Complexity > 10 {
			t.Fatalf("Complexity = %d out of range", s.Complexity)
		}
		if s.AnimationSpeed < 0.25 || s.AnimationSpeed > 3 {
			t.Fatalf("AnimationSpeed = %v out of range", s.AnimationSpeed)
		}
		if !s.IsAnimating {
			t.Fatal("Surprise() should keep play state")
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("settings:\n  palette: Pastel\n  complexity: 14\nlive:\n  fps: 24\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Settings.Palette != "Pastel" {
		t.Errorf("Palette = %q, expected Pastel", cfg.Settings.Palette)
	}
	if cfg.Settings.Complexity != 10 {
		t.Errorf("Complexity = %d, expected clamped 10", cfg.Settings.Complexity)
	}
	if cfg.Settings.GridSize != 4 {
		t.Errorf("GridSize = %d, expected default 4", cfg.Settings.GridSize)
	}
	if cfg.Live.FPS != 24 {
		t.Errorf("Live.FPS = %d, expected 24", cfg.Live.FPS)
	}
	if cfg.Render.TileSize != 320 {
		t.Errorf("Render.TileSize = %d, expected 320", cfg.Render.TileSize)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "artgrid.yaml")
	cfg := DefaultConfig()
	cfg.Settings.Palette = "Neon"
	cfg.Settings.Seed = 77

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != cfg {
		t.Errorf("Load() = %+v, expected %+v", got, cfg)
	}
}
