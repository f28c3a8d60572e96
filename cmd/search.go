package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/cinemood/internal/config"
)

// searchCmd runs a single mood search and prints the ranked results.
var searchCmd = &cobra.Command{
	Use:   "search <mood text>",
	Short: "Search movies by mood without the TUI",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	client := newClient(cfg)

	results, err := client.Search(context.Background(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	printRanked(results)
	return nil
}
