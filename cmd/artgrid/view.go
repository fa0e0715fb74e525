package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/artgrid/internal/app"
	"github.com/vovakirdan/artgrid/internal/config"
	"github.com/vovakirdan/artgrid/internal/core"
	"github.com/vovakirdan/artgrid/internal/export"
	"github.com/vovakirdan/artgrid/internal/platform/tui"
)

var (
	flagViewTileSize int
	flagViewFPS      int
	flagViewSize     int
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Animate the grid in a desktop window",
	Long: `Open a window showing the grid animating. Requires a build with the
ebiten tag:

  go build -tags ebiten ./cmd/artgrid

Controls:
  Space      - Play/pause
  R          - Reset the animation clock
  S/N        - New seed
  G          - Surprise me
  P          - Next palette
  D          - Toggle designer mode
  [ / ]      - Less / more complexity
  - / =      - Slower / faster
  , / .      - Smaller / larger grid
  F5         - Regenerate the batch with a new seed
  Backspace  - Reset settings to defaults
  E          - Export the grid and its collectible card as PNG
  H          - Hide/show status
  Q/Esc      - Quit

Examples:
  artgrid view --seed 42
  artgrid view --grid 6 --tile-size 96`,
	Run: runView,
}

func init() {
	viewCmd.Flags().IntVar(&flagViewTileSize, "tile-size", 160, "Tile edge in pixels for the live frame")
	viewCmd.Flags().IntVar(&flagViewFPS, "fps", 30, "Frames per second")
	viewCmd.Flags().IntVar(&flagViewSize, "window", 800, "Initial window edge in pixels")
}

func runView(cmd *cobra.Command, args []string) {
	cfg, s, err := loadSettings(cmd)
	if err != nil {
		fatal("loading settings", err)
	}

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	size := max(flagViewTileSize, 16)
	scale := float64(size) / float64(max(cfg.Render.TileSize, 1))
	session := core.NewSession(s, config.RenderConfig{
		TileSize: size,
		Gap:      max(1, int(float64(cfg.Render.Gap)*scale+0.5)),
		Padding:  max(1, int(float64(cfg.Render.Padding)*scale+0.5)),
	}, nil)
	defer session.Close()

	err = app.Run(session, app.Options{
		Title:  "artgrid",
		Width:  flagViewSize,
		Height: flagViewSize,
		FPS:    flagViewFPS,
		Export: func(sess *core.Session) (string, error) {
			st := sess.Settings()
			files, err := tui.ExportArtwork(cfg, st, sess.Specs(), sess.Elapsed(), time.Now())
			if err != nil {
				return "", err
			}
			record(store, string(export.KindGrid), st, files.Grid)
			record(store, string(export.KindCard), st, files.Card)
			return files.Card, nil
		},
	})
	if errors.Is(err, app.ErrNoGUI) {
		fmt.Fprintln(os.Stderr, "The desktop window requires the ebiten build tag.")
		fmt.Fprintln(os.Stderr, "Rebuild with `go build -tags ebiten ./cmd/artgrid`, or use `artgrid live`.")
		os.Exit(2)
	}
	if err != nil {
		fatal("running window", err)
	}
}
