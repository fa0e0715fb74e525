// artgrid renders generative tile grids: still PNGs, collectible cards,
// animated GIFs, and live views in the terminal, over SSH or in a window.
//
// Usage:
//
//	artgrid list                 - List pattern types and palettes
//	artgrid render               - Render the grid to PNG (optionally a card)
//	artgrid tile <type>          - Render one pattern tile to PNG
//	artgrid animate              - Render the animated grid to GIF
//	artgrid live                 - Live animated grid in the terminal
//	artgrid serve                - Serve the live grid over SSH
//	artgrid view                 - Live grid in a desktop window (-tags ebiten)
//	artgrid history              - Show past exports
//	artgrid seed [text]          - Print a fresh seed or derive one from text
//	artgrid share                - Print the share query for the settings
//
// Global flags:
//
//	--seed <n|text>      - Batch seed; text is hashed into a seed
//	--palette <name>     - Colour palette
//	--complexity <0-10>  - Pattern complexity
//	--grid <2-8>         - Tiles per row and column
//	--designer           - Designer mode
//	--query <string>     - Share string, e.g. "seed=42&cols=3&palette=Neon"
//	--config <path>      - Config file (default: ~/.artgrid/config.yaml)
//	--db <path>          - History database
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/artgrid/internal/config"
	"github.com/vovakirdan/artgrid/internal/palette"
	"github.com/vovakirdan/artgrid/internal/seed"
	"github.com/vovakirdan/artgrid/internal/storage"
)

var (
	// Global flags
	flagSeed       string
	flagPalette    string
	flagComplexity int
	flagGrid       int
	flagDesigner   bool
	flagSpeed      float64
	flagQuery      string
	flagConfig     string
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "artgrid",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "artgrid",
	Short: "artgrid - generative art tile grids",
	Long: `artgrid draws grids of seeded generative tiles: moving lights,
waveforms, light rays, diagonal stripes and grain fields, in one of five
palettes. The same seed and settings always produce the same artwork.

Available commands:
  list     - Show pattern types and palettes
  render   - Export the grid (and optionally a collectible card) as PNG
  tile     - Export a single tile as PNG
  animate  - Export the animated grid as GIF
  live     - Animate the grid in the terminal
  serve    - Start SSH server hosting the live grid
  view     - Animate the grid in a desktop window
  history  - Show past exports
  seed     - Generate or derive seeds
  share    - Print the share string for the current settings

Examples:
  artgrid render --seed 42 --palette Neon
  artgrid render --query "seed=42&cols=3&palette=Neon" --card
  artgrid tile wave --complexity 8
  artgrid animate --frames 60 --fps 15
  artgrid live --grid 3
  artgrid serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagSeed, "seed", "", "Batch seed (number, or text to hash); empty keeps the configured seed")
	pf.StringVar(&flagPalette, "palette", "", "Palette: "+strings.Join(palette.Names(), ", "))
	pf.IntVar(&flagComplexity, "complexity", 0, "Pattern complexity (0-10)")
	pf.IntVar(&flagGrid, "grid", 0, "Tiles per row and column (2-8)")
	pf.BoolVar(&flagDesigner, "designer", false, "Designer mode: subtler, pale-accent variants")
	pf.Float64Var(&flagSpeed, "speed", 0, "Animation speed multiplier (0.25-3)")
	pf.StringVar(&flagQuery, "query", "", "Share string with seed, cols, palette, complexity, live, designer")
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML (default: ~/.artgrid/config.yaml)")
	pf.StringVar(&flagDBPath, "db", "", "Path to history database (default from config)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(tileCmd)
	rootCmd.AddCommand(animateCmd)
	rootCmd.AddCommand(liveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(shareCmd)
}

// setupLogger applies --log-level and --log-file to the shared logger.
func setupLogger() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagLogFile != "" {
		f, err := os.OpenFile(config.ExpandHome(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logger.SetOutput(f)
	}
	return nil
}

// quietLogger silences stderr logging while a full-screen UI owns the
// terminal, unless logs go to a file.
func quietLogger() {
	if flagLogFile == "" {
		logger.SetOutput(io.Discard)
	}
}

// loadConfig reads the config file and applies --db.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg, nil
}

// applyOverrides layers the share query and then explicitly set flags over s.
func applyOverrides(cmd *cobra.Command, s config.Settings) (config.Settings, error) {
	if flagQuery != "" {
		var err error
		s, err = config.ParseQuery(flagQuery, s)
		if err != nil {
			return s, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		s.Seed = seed.Parse(flagSeed)
	}
	if flags.Changed("palette") {
		if !palette.Exists(flagPalette) {
			return s, fmt.Errorf("unknown palette %q (available: %s)", flagPalette, strings.Join(palette.Names(), ", "))
		}
		s.Palette = flagPalette
	}
	if flags.Changed("complexity") {
		s.Complexity = flagComplexity
	}
	if flags.Changed("grid") {
		s.GridSize = flagGrid
	}
	if flags.Changed("designer") {
		s.DesignerMode = flagDesigner
	}
	if flags.Changed("speed") {
		s.AnimationSpeed = flagSpeed
	}
	return s.Normalize(), nil
}

// loadSettings resolves the config file, then the share query, then flags.
func loadSettings(cmd *cobra.Command) (config.Config, config.Settings, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, cfg.Settings, err
	}
	s, err := applyOverrides(cmd, cfg.Settings)
	return cfg, s, err
}

// openStore opens the history database. History is optional: failures are
// logged and a nil store returned.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// record adds an export to the history, if there is one.
func record(store *storage.Store, kind string, s config.Settings, path string) {
	if store == nil {
		return
	}
	_, err := store.SaveRender(storage.Render{
		Kind:       kind,
		Seed:       s.Seed,
		Palette:    s.Palette,
		Complexity: s.Complexity,
		Designer:   s.DesignerMode,
		GridSize:   s.GridSize,
		Path:       path,
	})
	if err != nil {
		logger.Warn("could not record export", "path", path, "error", err)
	}
}

// fatal prints a prefixed error and exits.
func fatal(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	os.Exit(1)
}
