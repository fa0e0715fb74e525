package tui

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/artgrid/internal/config"
	"github.com/vovakirdan/artgrid/internal/core"
	"github.com/vovakirdan/artgrid/internal/export"
	"github.com/vovakirdan/artgrid/internal/grid"
	"github.com/vovakirdan/artgrid/internal/storage"
	"github.com/vovakirdan/artgrid/internal/tiles"
)

// chromeRows is the number of terminal rows reserved below the artwork.
const chromeRows = 3

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	flashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options wires optional collaborators into the live viewer.
type Options struct {
	Store       *storage.Store // nil disables history and saved settings
	Logger      *log.Logger
	SettingsKey string // storage key for the settings blob; empty disables saving
	NoExport    bool   // refuse ctrl+s, e.g. for remote sessions
	Width       int
	Height      int
}

// exportedMsg reports the outcome of a background export.
type exportedMsg struct {
	files Exported
	err   error
}

// viewCache keeps the last terminal rendering so repeated View calls for
// an unchanged frame and size are cheap.
type viewCache struct {
	frame  *image.RGBA
	w, h   int
	screen *core.Screen
	out    string
}

// Model is the Bubble Tea model for the live grid viewer.
type Model struct {
	cfg      config.Config
	session  *core.Session
	opts     Options
	keys     KeyMap
	help     help.Model
	cache    *viewCache
	width    int
	height   int
	flash    string
	flashErr bool
	quitting bool
}

// NewModel creates a live viewer for settings. Tiles render at
// cfg.Live.RenderSize and are scaled to the terminal on display.
func NewModel(cfg config.Config, settings config.Settings, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	size := max(cfg.Live.RenderSize, 8)
	scale := float64(size) / float64(max(cfg.Render.TileSize, 1))
	render := config.RenderConfig{
		TileSize: size,
		Gap:      max(1, int(float64(cfg.Render.Gap)*scale+0.5)),
		Padding:  max(1, int(float64(cfg.Render.Padding)*scale+0.5)),
	}

	return Model{
		cfg:     cfg,
		session: core.NewSession(settings, render, nil),
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		cache:   &viewCache{screen: core.NewScreen(0, 0)},
		width:   opts.Width,
		height:  opts.Height,
	}
}

// Session exposes the viewer state, mainly for tests and callers that
// want the final settings after the program exits.
func (m Model) Session() *core.Session {
	return m.session
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Live.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.session.Tick()
		return m, tickCmd(m.cfg.Live.FPS)

	case exportedMsg:
		if msg.err != nil {
			m.setFlash(fmt.Sprintf("export failed: %v", msg.err), true)
			m.opts.Logger.Error("export failed", "error", msg.err)
			return m, nil
		}
		m.setFlash("saved "+msg.files.Card, false)
		m.opts.Logger.Info("exported artwork", "grid", msg.files.Grid, "card", msg.files.Card)
		return m, nil
	}

	return m, nil
}

func (m *Model) setFlash(s string, isErr bool) {
	m.flash = s
	m.flashErr = isErr
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.flash = ""
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.saveSettings()
		return m, tea.Quit
	case core.ActionExport:
		if m.opts.NoExport {
			m.setFlash("export is disabled in this session", true)
			return m, nil
		}
		m.setFlash("exporting...", false)
		return m, m.exportCmd()
	case core.ActionNone:
		return m, nil
	}

	if m.session.Apply(action) {
		m.opts.Logger.Debug("regenerated", "action", action, "settings", m.session.Settings())
	}
	return m, nil
}

// saveSettings stores the current settings blob. Best-effort: the viewer
// exits regardless.
func (m Model) saveSettings() {
	if m.opts.Store == nil || m.opts.SettingsKey == "" {
		return
	}
	blob, err := config.MarshalBlob(m.session.Settings())
	if err == nil {
		err = m.opts.Store.SaveSettings(m.opts.SettingsKey, blob)
	}
	if err != nil {
		m.opts.Logger.Warn("could not save settings", "error", err)
	}
}

// exportCmd renders the current batch at full resolution off the UI loop.
func (m Model) exportCmd() tea.Cmd {
	specs := m.session.Specs()
	t := m.session.Elapsed()
	st := m.session.Settings()
	cfg := m.cfg
	store := m.opts.Store
	return func() tea.Msg {
		files, err := ExportArtwork(cfg, st, specs, t, time.Now())
		if err == nil && store != nil {
			err = files.Record(store, st)
		}
		return exportedMsg{files: files, err: err}
	}
}

// Exported lists the files written by one export.
type Exported struct {
	Grid string
	Card string
}

// Record adds both files to the history.
func (e Exported) Record(store *storage.Store, st config.Settings) error {
	for _, f := range []struct {
		kind export.Kind
		path string
	}{{export.KindGrid, e.Grid}, {export.KindCard, e.Card}} {
		_, err := store.SaveRender(storage.Render{
			Kind:       string(f.kind),
			Seed:       st.Seed,
			Palette:    st.Palette,
			Complexity: st.Complexity,
			Designer:   st.DesignerMode,
			GridSize:   st.GridSize,
			Path:       f.path,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// ExportArtwork renders specs at time t with the configured tile size and
// writes the grid PNG and its collectible card into the export directory.
func ExportArtwork(cfg config.Config, st config.Settings, specs []tiles.Spec, t float64, now time.Time) (Exported, error) {
	r := grid.NewRenderer(grid.Layout{
		Cols:     st.GridSize,
		TileSize: cfg.Render.TileSize,
		Gap:      cfg.Render.Gap,
		Padding:  cfg.Render.Padding,
	})
	frame := r.Frame(specs, t)
	dir := config.ExpandHome(cfg.Export.Dir)

	var out Exported
	out.Grid = filepath.Join(dir, export.GridFilename(st.Seed, now))
	if err := export.WritePNG(out.Grid, frame); err != nil {
		return Exported{}, err
	}

	card := export.Card(frame, export.CardMeta{
		Seed:           st.Seed,
		Palette:        st.Palette,
		Complexity:     st.Complexity,
		GridSize:       st.GridSize,
		AnimationSpeed: st.AnimationSpeed,
		DesignerMode:   st.DesignerMode,
		Patterns:       tiles.PatternLabels(specs),
		Created:        now,
	})
	out.Card = filepath.Join(dir, export.CardFilename(st.Seed, now))
	if err := export.WritePNG(out.Card, card); err != nil {
		return out, err
	}
	return out, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderArt())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.session.Status()))
	b.WriteString("\n")
	switch {
	case m.flash != "" && m.flashErr:
		b.WriteString(errorStyle.Render(m.flash))
	case m.flash != "":
		b.WriteString(flashStyle.Render(m.flash))
	default:
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// renderArt fits the current frame into the space above the status lines,
// keeping its aspect ratio, and centres it horizontally.
func (m Model) renderArt() string {
	frame := m.session.Frame()
	width, height := m.width, m.height
	if width <= 0 || height <= 0 {
		width, height = 80, 24
	}
	rows := max(height-chromeRows, 1)
	if m.help.ShowAll {
		rows = max(rows-len(m.keys.FullHelp())+1, 1)
	}

	c := m.cache
	if c.frame == frame && c.w == width && c.h == rows {
		return c.out
	}

	fb := frame.Bounds()
	pw, ph := FitSize(fb.Dx(), fb.Dy(), width, rows*2)
	c.screen.Resize(pw, (ph+1)/2)
	c.screen.Paint(grid.Fit(frame, pw, ph))

	c.out = lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderScreen(c.screen))
	c.frame, c.w, c.h = frame, width, rows
	return c.out
}

// FitSize scales w x h to fit inside maxW x maxH, keeping the aspect ratio.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return 1, 1
	}
	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	return max(int(float64(w)*scale), 1), max(int(float64(h)*scale), 1)
}

// Run starts the live viewer and returns the settings it ended with.
func Run(cfg config.Config, settings config.Settings, opts Options) (config.Settings, error) {
	model := NewModel(cfg, settings, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return settings, err
	}
	return model.Session().Settings(), nil
}
