package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/artgrid/internal/config"
	"github.com/vovakirdan/artgrid/internal/core"
	"github.com/vovakirdan/artgrid/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Render = config.RenderConfig{TileSize: 16, Gap: 2, Padding: 2}
	cfg.Live.RenderSize = 8
	cfg.Export.Dir = t.TempDir()
	return cfg
}

func testSettings() config.Settings {
	s := config.DefaultSettings()
	s.GridSize = 2
	s.Seed = 42
	return s
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionTogglePlay},
		{runeKey('r'), core.ActionReset},
		{runeKey('n'), core.ActionNewSeed},
		{runeKey('g'), core.ActionSurprise},
		{runeKey('d'), core.ActionDesigner},
		{runeKey('p'), core.ActionNextPalette},
		{runeKey('['), core.ActionComplexityDown},
		{runeKey(']'), core.ActionComplexityUp},
		{runeKey('-'), core.ActionSpeedDown},
		{runeKey('+'), core.ActionSpeedUp},
		{runeKey('{'), core.ActionGridShrink},
		{runeKey('}'), core.ActionGridGrow},
		{tea.KeyMsg{Type: tea.KeyCtrlR}, core.ActionRegenerate},
		{runeKey('R'), core.ActionResetDefaults},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionExport},
		{runeKey('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey('x'), core.ActionNone},
		{runeKey('?'), core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.expected {
			t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestRenderScreenShape(t *testing.T) {
	s := core.NewScreen(5, 3)
	s.Clear(core.RGB(10, 20, 30))
	s.Set(2, 1, core.Cell{Top: core.RGB(255, 0, 0), Bottom: core.RGB(0, 0, 255)})

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, expected 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 5 {
			t.Errorf("line %d width = %d, expected 5", i, w)
		}
	}
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		w, h, maxW, maxH int
		ew, eh           int
	}{
		{100, 100, 80, 40, 40, 40},
		{200, 100, 80, 80, 80, 40},
		{10, 10, 80, 80, 80, 80},
		{0, 10, 80, 80, 1, 1},
	}
	for _, tt := range tests {
		w, h := FitSize(tt.w, tt.h, tt.maxW, tt.maxH)
		if w != tt.ew || h != tt.eh {
			t.Errorf("FitSize(%d,%d,%d,%d) = %dx%d, expected %dx%d",
				tt.w, tt.h, tt.maxW, tt.maxH, w, h, tt.ew, tt.eh)
		}
	}
}

func TestModelKeysDriveSession(t *testing.T) {
	m := NewModel(testConfig(t), testSettings(), Options{Width: 40, Height: 20})

	next, _ := m.Update(runeKey('d'))
	m = next.(Model)
	if !m.Session().Settings().DesignerMode {
		t.Error("d should toggle designer mode")
	}

	next, _ = m.Update(runeKey('}'))
	m = next.(Model)
	if got := m.Session().Settings().GridSize; got != 3 {
		t.Errorf("GridSize = %d, expected 3", got)
	}

	next, _ = m.Update(runeKey('?'))
	m = next.(Model)
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(testConfig(t), testSettings(), Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, "paused") {
		t.Error("view should include the status line")
	}
	if lines := strings.Split(view, "\n"); len(lines) > 20 {
		t.Errorf("view has %d lines, expected at most 20", len(lines))
	}
	if m.View() != view {
		t.Error("view of an unchanged frame should be stable")
	}
}

func TestModelTickAdvances(t *testing.T) {
	s := testSettings()
	s.IsAnimating = true
	m := NewModel(testConfig(t), s, Options{})

	ticks := m.Session().Scheduler().Ticks()
	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.Session().Scheduler().Ticks() != ticks+1 {
		t.Error("tick should advance the scheduler")
	}
}

func TestModelQuitSavesSettings(t *testing.T) {
	store := openStore(t)
	m := NewModel(testConfig(t), testSettings(), Options{Store: store, SettingsKey: "live"})

	next, _ := m.Update(runeKey('p'))
	m = next.(Model)
	palette := m.Session().Settings().Palette

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}

	blob, ok, err := store.LoadSettings("live")
	if err != nil || !ok {
		t.Fatalf("LoadSettings() = %v, %v", ok, err)
	}
	saved, err := config.UnmarshalBlob(blob)
	if err != nil {
		t.Fatalf("UnmarshalBlob() failed: %v", err)
	}
	if saved.Palette != palette || saved.Seed != 42 {
		t.Errorf("saved settings = %+v", saved)
	}
}

func TestModelExport(t *testing.T) {
	cfg := testConfig(t)
	store := openStore(t)
	m := NewModel(cfg, testSettings(), Options{Store: store})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("ctrl+s should return an export command")
	}
	msg, ok := cmd().(exportedMsg)
	if !ok {
		t.Fatal("export command should report its result")
	}
	if msg.err != nil {
		t.Fatalf("export failed: %v", msg.err)
	}
	for _, path := range []string{msg.files.Grid, msg.files.Card} {
		if filepath.Dir(path) != cfg.Export.Dir {
			t.Errorf("exported to %s, expected directory %s", path, cfg.Export.Dir)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("exported file missing: %v", err)
		}
	}
	if !strings.HasPrefix(filepath.Base(msg.files.Card), "generative-card-42-") {
		t.Errorf("card file = %s", msg.files.Card)
	}

	renders, err := store.RecentRenders(5)
	if err != nil {
		t.Fatalf("RecentRenders() failed: %v", err)
	}
	kinds := map[string]bool{}
	for _, r := range renders {
		if r.Seed != 42 {
			t.Errorf("recorded seed %d, expected 42", r.Seed)
		}
		kinds[r.Kind] = true
	}
	if len(renders) != 2 || !kinds["grid"] || !kinds["card"] {
		t.Errorf("history = %+v", renders)
	}

	next, _ = m.Update(msg)
	m = next.(Model)
	if !strings.Contains(m.View(), "saved") {
		t.Error("view should confirm the export")
	}
}

func TestModelNoExport(t *testing.T) {
	m := NewModel(testConfig(t), testSettings(), Options{NoExport: true})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	if cmd != nil {
		t.Error("export should be refused")
	}
	if !m.flashErr {
		t.Error("refusal should be shown as an error")
	}
}

func TestHistoryFilter(t *testing.T) {
	store := openStore(t)
	for _, kind := range []string{"grid", "card", "grid", "animation"} {
		if _, err := store.SaveRender(storage.Render{Kind: kind, Seed: 9, Palette: "Neon", GridSize: 2, Path: "/tmp/x.png"}); err != nil {
			t.Fatalf("SaveRender() failed: %v", err)
		}
	}

	m := NewHistoryModel(store, 100, 30)
	if len(m.Visible()) != 4 {
		t.Fatalf("Visible() = %d, expected 4", len(m.Visible()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if len(m.Visible()) != 2 {
		t.Errorf("grid filter shows %d, expected 2", len(m.Visible()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	if len(m.Visible()) != 1 || m.Visible()[0].Kind != "animation" {
		t.Errorf("animation filter shows %+v", m.Visible())
	}
}

func TestHistoryRow(t *testing.T) {
	row := HistoryRow(storage.Render{
		Kind: "tile", Seed: 1, Palette: "Ocean", Complexity: 7, Designer: true,
		GridSize: 3, Path: "/out/generative-art-wave-1.png",
	})
	if row[2] != "#31" {
		t.Errorf("seed column = %q, expected #31", row[2])
	}
	if row[4] != "7*" || row[5] != "3x3" || row[6] != "generative-art-wave-1.png" {
		t.Errorf("row = %v", row)
	}
}

func TestHistoryEmpty(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	if !strings.Contains(m.View(), "Nothing exported yet") {
		t.Error("empty history should say so")
	}
}
