package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var flagShareBase string

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print the share string for the current settings",
	Long: `Print the settings as a share string that --query (or any artgrid
front end) reads back to reproduce the same artwork.

Examples:
  artgrid share --seed 42 --palette Neon
  artgrid share --seed 42 --base https://example.com/art
  artgrid render --query "$(artgrid share --seed 42)"`,
	Run: runShare,
}

func init() {
	shareCmd.Flags().StringVar(&flagShareBase, "base", "", "URL to prefix the query with")
}

func runShare(cmd *cobra.Command, args []string) {
	_, s, err := loadSettings(cmd)
	if err != nil {
		fatal("loading settings", err)
	}
	q := s.Query()
	if flagShareBase != "" {
		fmt.Println(strings.TrimRight(flagShareBase, "?") + "?" + q)
		return
	}
	fmt.Println(q)
}
