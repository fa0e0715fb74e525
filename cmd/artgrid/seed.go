package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/artgrid/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed [text]",
	Short: "Generate a seed or derive one from text",
	Long: `Without arguments, print a fresh random seed and its display hash.
With text, print the seed that text hashes to; --seed accepts the same text.

Examples:
  artgrid seed
  artgrid seed "my favourite sunset"
  artgrid render --seed "my favourite sunset"`,
	Run: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) {
	var s uint32
	if len(args) > 0 {
		s = seed.FromString(strings.Join(args, " "))
	} else {
		s = seed.Generate()
	}
	fmt.Printf("%d  #%s\n", s, seed.Display(s))
}
