package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/artgrid/internal/config"
	"github.com/vovakirdan/artgrid/internal/grid"
	"github.com/vovakirdan/artgrid/internal/storage"
)

func TestFrameTimes(t *testing.T) {
	times := FrameTimes(4, 10, 2)
	expected := []float64{0, 0.2, 0.4, 0.6}
	if len(times) != len(expected) {
		t.Fatalf("FrameTimes() = %v, expected %v", times, expected)
	}
	for i := range expected {
		if d := times[i] - expected[i]; d > 1e-9 || d < -1e-9 {
			t.Errorf("frame %d at %v, expected %v", i, times[i], expected[i])
		}
	}

	if FrameTimes(0, 10, 1) != nil {
		t.Error("zero frames should give no times")
	}
}

func TestRenderFramesMatchesSequential(t *testing.T) {
	s := config.DefaultSettings()
	s.GridSize = 2
	s.Seed = 5
	specs := s.Specs()
	layout := grid.Layout{Cols: 2, TileSize: 12, Gap: 1, Padding: 1}
	times := FrameTimes(5, 10, 1)

	frames, err := renderFrames(context.Background(), layout, specs, times)
	if err != nil {
		t.Fatalf("renderFrames() failed: %v", err)
	}
	r := grid.NewRenderer(layout)
	for i, tm := range times {
		want := r.Frame(specs, tm)
		if frames[i].Bounds() != want.Bounds() {
			t.Fatalf("frame %d bounds = %v, expected %v", i, frames[i].Bounds(), want.Bounds())
		}
		b := want.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y += 3 {
			for x := b.Min.X; x < b.Max.X; x += 3 {
				if frames[i].At(x, y) != want.At(x, y) {
					t.Fatalf("frame %d differs at (%d,%d)", i, x, y)
				}
			}
		}
	}
}

func TestRenderFramesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := config.DefaultSettings()
	_, err := renderFrames(ctx, grid.Layout{Cols: 2, TileSize: 8}, s.Specs(), FrameTimes(50, 10, 1))
	if err == nil {
		t.Error("cancelled context should stop rendering")
	}
}

func TestPort(t *testing.T) {
	tests := map[string]string{
		":23235":         "23235",
		"0.0.0.0:2222":   "2222",
		"[::1]:22":       "22",
		"no-port-at-all": "no-port-at-all",
	}
	for in, expected := range tests {
		if got := port(in); got != expected {
			t.Errorf("port(%q) = %q, expected %q", in, got, expected)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	if err := rootCmd.ParseFlags([]string{"--palette", "Neon", "--grid", "3", "--seed", "99", "--query", "seed=7&complexity=9&designer=1"}); err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}
	t.Cleanup(func() {
		flagPalette, flagGrid, flagSeed, flagQuery = "", 0, "", ""
		for _, name := range []string{"palette", "grid", "seed", "query"} {
			if f := rootCmd.Flags().Lookup(name); f != nil {
				f.Changed = false
			}
		}
	})

	s, err := applyOverrides(rootCmd, config.DefaultSettings())
	if err != nil {
		t.Fatalf("applyOverrides() failed: %v", err)
	}
	// Flags win over the query; the query fills in the rest.
	if s.Seed != 99 || s.Palette != "Neon" || s.GridSize != 3 {
		t.Errorf("flags not applied: %+v", s)
	}
	if s.Complexity != 9 || !s.DesignerMode {
		t.Errorf("query not applied: %+v", s)
	}
}

func TestResumeSettings(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	base := config.DefaultSettings()
	if got := resumeSettings(store, "live", base); got != base {
		t.Errorf("empty store should keep base, got %+v", got)
	}
	if got := resumeSettings(nil, "live", base); got != base {
		t.Errorf("nil store should keep base, got %+v", got)
	}

	saved := base
	saved.Palette = "Cool"
	saved.GridSize = 6
	blob, err := config.MarshalBlob(saved)
	if err != nil {
		t.Fatalf("MarshalBlob() failed: %v", err)
	}
	if err := store.SaveSettings("live", blob); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	if got := resumeSettings(store, "live", base); got.Palette != "Cool" || got.GridSize != 6 {
		t.Errorf("resumeSettings() = %+v, expected saved settings", got)
	}
}
