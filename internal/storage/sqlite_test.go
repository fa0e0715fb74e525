package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieveRenders(t *testing.T) {
	store := openTestStore(t)

	renders := []Render{
		{Kind: "grid", Seed: 42, Palette: "Neon", Complexity: 5, GridSize: 3, Path: "a.png"},
		{Kind: "card", Seed: 42, Palette: "Neon", Complexity: 5, GridSize: 3, Designer: true, Path: "b.png"},
		{Kind: "tile", Seed: 7, Palette: "Ocean", Complexity: 2, GridSize: 1, Path: "c.png"},
	}
	for _, r := range renders {
		if _, err := store.SaveRender(r); err != nil {
			t.Fatalf("SaveRender() failed: %v", err)
		}
	}

	recent, err := store.RecentRenders(10)
	if err != nil {
		t.Fatalf("RecentRenders() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 renders, got %d", len(recent))
	}
	// Newest first
	if recent[0].Path != "c.png" || recent[2].Path != "a.png" {
		t.Errorf("Unexpected order: %s, %s, %s", recent[0].Path, recent[1].Path, recent[2].Path)
	}
	if !recent[1].Designer {
		t.Error("Expected designer flag to round-trip")
	}
	if recent[0].Palette != "Ocean" || recent[0].Complexity != 2 || recent[0].Seed != 7 {
		t.Errorf("Unexpected fields: %+v", recent[0])
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	bySeed, err := store.RendersBySeed(42)
	if err != nil {
		t.Fatalf("RendersBySeed() failed: %v", err)
	}
	if len(bySeed) != 2 {
		t.Errorf("Expected 2 renders for seed 42, got %d", len(bySeed))
	}
}

func TestStoreRecentRendersLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 25 {
		if _, err := store.SaveRender(Render{Kind: "grid", Seed: uint32(i), Palette: "Neon", GridSize: 2, Path: "x.png"}); err != nil {
			t.Fatalf("SaveRender() failed: %v", err)
		}
	}

	recent, err := store.RecentRenders(5)
	if err != nil {
		t.Fatalf("RecentRenders() failed: %v", err)
	}
	if len(recent) != 5 {
		t.Errorf("Expected 5 renders, got %d", len(recent))
	}

	// Zero limit falls back to the default of 20
	recent, err = store.RecentRenders(0)
	if err != nil {
		t.Fatalf("RecentRenders() failed: %v", err)
	}
	if len(recent) != 20 {
		t.Errorf("Expected 20 renders, got %d", len(recent))
	}
}

func TestStoreLargeSeed(t *testing.T) {
	store := openTestStore(t)

	const big = uint32(4_000_000_000)
	if _, err := store.SaveRender(Render{Kind: "grid", Seed: big, Palette: "Sunset", GridSize: 4, Path: "big.png"}); err != nil {
		t.Fatalf("SaveRender() failed: %v", err)
	}
	got, err := store.RendersBySeed(big)
	if err != nil {
		t.Fatalf("RendersBySeed() failed: %v", err)
	}
	if len(got) != 1 || got[0].Seed != big {
		t.Errorf("Expected seed %d to round-trip, got %+v", big, got)
	}
}

func TestStoreSettings(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.LoadSettings("live"); err != nil || ok {
		t.Fatalf("LoadSettings() on empty store = ok %v, err %v", ok, err)
	}

	if err := store.SaveSettings("live", "gridSize: 3\n"); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	if err := store.SaveSettings("live", "gridSize: 5\n"); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	blob, ok, err := store.LoadSettings("live")
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if !ok || blob != "gridSize: 5\n" {
		t.Errorf("LoadSettings() = %q, %v; expected latest blob", blob, ok)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Total != 0 || !stats.LastExport.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	for _, r := range []Render{
		{Kind: "grid", Seed: 1, Palette: "Neon", GridSize: 2, Path: "1.png"},
		{Kind: "grid", Seed: 2, Palette: "Neon", GridSize: 2, Path: "2.png"},
		{Kind: "animation", Seed: 2, Palette: "Neon", GridSize: 2, Path: "2.gif"},
	} {
		if _, err := store.SaveRender(r); err != nil {
			t.Fatalf("SaveRender() failed: %v", err)
		}
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("Expected total 3, got %d", stats.Total)
	}
	if stats.UniqueSeeds != 2 {
		t.Errorf("Expected 2 unique seeds, got %d", stats.UniqueSeeds)
	}
	if stats.ByKind["grid"] != 2 || stats.ByKind["animation"] != 1 {
		t.Errorf("Unexpected per-kind counts: %v", stats.ByKind)
	}
	if stats.LastExport.IsZero() {
		t.Error("Expected last export time")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
