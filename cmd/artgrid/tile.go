package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/artgrid/internal/config"
	"github.com/vovakirdan/artgrid/internal/export"
	"github.com/vovakirdan/artgrid/internal/pattern"
	"github.com/vovakirdan/artgrid/internal/seed"
)

var (
	flagTileSize int
	flagTileTime float64
	flagTileOut  string
)

var tileCmd = &cobra.Command{
	Use:   "tile <type>",
	Short: "Render a single pattern tile to PNG",
	Long: `Render one tile of the given pattern type, like the enlarged view of a
grid tile.

Pattern types: pixel, wave, fractal, diagonal, grain

The tile uses --seed when set; otherwise a fresh seed is drawn and printed
so the tile can be reproduced.

Examples:
  artgrid tile wave
  artgrid tile fractal --seed 42 --palette Neon --size 1024
  artgrid tile grain --designer --time 3`,
	Args: cobra.ExactArgs(1),
	Run:  runTile,
}

func init() {
	tileCmd.Flags().IntVar(&flagTileSize, "size", 600, "Tile edge in pixels")
	tileCmd.Flags().Float64Var(&flagTileTime, "time", 0, "Animation time in seconds to render")
	tileCmd.Flags().StringVarP(&flagTileOut, "out", "o", "", "Output file (default: generated name in the export directory)")
}

func runTile(cmd *cobra.Command, args []string) {
	typ, ok := pattern.ParseType(args[0])
	if !ok {
		names := make([]string, 0, len(pattern.Types()))
		for _, t := range pattern.Types() {
			names = append(names, string(t))
		}
		fmt.Fprintf(os.Stderr, "Error: unknown pattern type %q\n", args[0])
		fmt.Fprintf(os.Stderr, "Available types: %s\n", strings.Join(names, ", "))
		os.Exit(1)
	}

	cfg, s, err := loadSettings(cmd)
	if err != nil {
		fatal("loading settings", err)
	}
	if s.Seed == 0 {
		s.Seed = seed.Generate()
	}
	s.GridSize = 1

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	size := max(flagTileSize, 16)
	img := pattern.Render(typ, size, size, pattern.Options{
		Seed:         s.Seed,
		Palette:      s.Palette,
		Complexity:   s.Complexity,
		DesignerMode: s.DesignerMode,
		Time:         flagTileTime,
	})

	path := flagTileOut
	if path == "" {
		path = filepath.Join(config.ExpandHome(cfg.Export.Dir), export.TileFilename(typ, s.Seed, time.Now()))
	}
	if err := export.WritePNG(path, img); err != nil {
		fatal("writing tile", err)
	}
	record(store, string(export.KindTile), s, path)
	logger.Info("rendered tile", "type", typ, "label", pattern.Label(typ), "seed", s.Seed, "path", path)
	fmt.Println(path)
}
