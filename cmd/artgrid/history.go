package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/artgrid/internal/platform/tui"
	"github.com/vovakirdan/artgrid/internal/seed"
	"github.com/vovakirdan/artgrid/internal/storage"
)

var (
	flagHistoryLimit  int
	flagHistorySeed   string
	flagHistoryStats  bool
	flagHistoryBrowse bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past exports",
	Long: `List grids, cards, tiles and animations exported by this machine,
newest first.

Examples:
  artgrid history
  artgrid history --limit 50
  artgrid history --for-seed 42
  artgrid history --stats
  artgrid history --browse`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of exports to show")
	historyCmd.Flags().StringVar(&flagHistorySeed, "for-seed", "", "Only exports made with this seed")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show totals instead of the list")
	historyCmd.Flags().BoolVar(&flagHistoryBrowse, "browse", false, "Browse interactively")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("loading config", err)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fatal("opening history database", err)
	}
	defer store.Close()

	if flagHistoryBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		quietLogger()
		if err := tui.RunHistory(store, width, height); err != nil {
			fatal("running history browser", err)
		}
		return
	}

	if flagHistoryStats {
		printStats(store)
		return
	}

	var renders []storage.Render
	if flagHistorySeed != "" {
		renders, err = store.RendersBySeed(seed.Parse(flagHistorySeed))
	} else {
		renders, err = store.RecentRenders(flagHistoryLimit)
	}
	if err != nil {
		fatal("retrieving history", err)
	}

	if len(renders) == 0 {
		fmt.Println("No exports recorded yet.")
		fmt.Println("Run 'artgrid render' to create one.")
		return
	}

	fmt.Printf("  %-12s  %-9s  %-8s  %-8s  %-3s  %-4s  %s\n", "When", "Kind", "Seed", "Palette", "Cx", "Grid", "File")
	fmt.Printf("  %-12s  %-9s  %-8s  %-8s  %-3s  %-4s  %s\n", "----", "----", "----", "-------", "--", "----", "----")
	for _, r := range renders {
		row := tui.HistoryRow(r)
		fmt.Printf("  %-12s  %-9s  %-8s  %-8s  %-3s  %-4s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5], r.Path)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fatal("retrieving stats", err)
	}

	fmt.Printf("Exports:       %d\n", stats.Total)
	fmt.Printf("Unique seeds:  %d\n", stats.UniqueSeeds)
	for _, kind := range []string{"grid", "card", "tile", "animation"} {
		if n := stats.ByKind[kind]; n > 0 {
			fmt.Printf("  %-10s   %d\n", kind, n)
		}
	}
	if !stats.LastExport.IsZero() {
		fmt.Printf("Last export:   %s\n", stats.LastExport.Local().Format("Jan 02 2006 15:04"))
	}
}
