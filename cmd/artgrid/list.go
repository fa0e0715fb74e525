package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/artgrid/internal/palette"
	"github.com/vovakirdan/artgrid/internal/pattern"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List pattern types and palettes",
	Long:  `Shows every pattern type with its display label, and every palette with its colours.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	types := pattern.Types()

	maxLen := 4 // "Type" header
	for _, t := range types {
		maxLen = max(maxLen, len(t))
	}

	fmt.Println("Pattern types:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxLen, "Type", "Label")
	fmt.Printf("  %-*s  %s\n", maxLen, "----", "-----")
	for _, t := range types {
		fmt.Printf("  %-*s  %s\n", maxLen, t, pattern.Label(t))
	}

	fmt.Println()
	fmt.Println("Palettes:")
	fmt.Println()
	for _, name := range palette.Names() {
		p := palette.Lookup(name)
		marker := " "
		if name == palette.Default {
			marker = "*"
		}
		fmt.Printf(" %s%-8s  %s  %s  %s  %s  %s\n", marker, name, p.Hex[0], p.Hex[1], p.Hex[2], p.Hex[3], p.Hex[4])
	}

	fmt.Println()
	fmt.Println("Run 'artgrid tile <type>' to render a single pattern.")
}
