package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/artgrid/internal/config"
	"github.com/vovakirdan/artgrid/internal/platform/tui"
	"github.com/vovakirdan/artgrid/internal/storage"
)

// liveSettingsKey stores the live viewer's settings between runs.
const liveSettingsKey = "live"

var (
	flagLiveFPS        int
	flagLiveRenderSize int
	flagLiveResume     bool
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Animate the grid in the terminal",
	Long: `Show the grid animating in the terminal, two pixels per character cell.

Controls:
  Space      - Play/pause
  R          - Reset the animation clock
  N          - New seed
  G          - Surprise me (random settings)
  D          - Toggle designer mode
  P          - Next palette
  [ / ]      - Less / more complexity
  - / +      - Slower / faster
  { / }      - Smaller / larger grid
  Ctrl+R     - Regenerate the batch with a new seed
  Shift+R    - Reset settings to defaults
  Ctrl+S     - Export the grid and its collectible card as PNG
  ?          - Full help
  Q/Ctrl+C   - Quit

Settings are remembered between runs; flags and --query override them.

Examples:
  artgrid live
  artgrid live --grid 3 --palette Neon
  artgrid live --fps 20 --render-size 128
  artgrid live --resume=false`,
	Run: runLive,
}

func init() {
	liveCmd.Flags().IntVar(&flagLiveFPS, "fps", 0, "Frames per second (default from config)")
	liveCmd.Flags().IntVar(&flagLiveRenderSize, "render-size", 0, "Tile edge rendered before scaling to the terminal (default from config)")
	liveCmd.Flags().BoolVar(&flagLiveResume, "resume", true, "Start from the settings saved by the last session")
}

// resumeSettings returns the saved settings for key, or base when nothing
// usable is stored.
func resumeSettings(store *storage.Store, key string, base config.Settings) config.Settings {
	if store == nil {
		return base
	}
	blob, ok, err := store.LoadSettings(key)
	if err != nil {
		logger.Warn("could not load saved settings", "error", err)
		return base
	}
	if !ok {
		return base
	}
	s, err := config.UnmarshalBlob(blob)
	if err != nil {
		logger.Warn("ignoring saved settings", "error", err)
		return base
	}
	return s
}

func runLive(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("loading config", err)
	}
	if flagLiveFPS > 0 {
		cfg.Live.FPS = flagLiveFPS
	}
	if flagLiveRenderSize > 0 {
		cfg.Live.RenderSize = flagLiveRenderSize
	}

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	s := cfg.Settings
	if flagLiveResume {
		s = resumeSettings(store, liveSettingsKey, s)
	}
	s, err = applyOverrides(cmd, s)
	if err != nil {
		fatal("loading settings", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	quietLogger()
	if _, err := tui.Run(cfg, s, tui.Options{
		Store:       store,
		Logger:      logger,
		SettingsKey: liveSettingsKey,
		Width:       width,
		Height:      height,
	}); err != nil {
		fatal("running viewer", err)
	}
}
