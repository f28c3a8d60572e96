package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/cinemood/internal/catalog"
	"github.com/papapumpkin/cinemood/internal/config"
)

// genresCmd prints the backend's ranked genre menu.
var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the top genres",
	Args:  cobra.NoArgs,
	RunE:  runGenres,
}

// browseCmd prints the top-rated movies for one genre.
var browseCmd = &cobra.Command{
	Use:   "browse <genre>",
	Short: "Browse the top-rated movies in a genre",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(genresCmd)
	rootCmd.AddCommand(browseCmd)
}

func runGenres(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	client := newClient(cfg)

	genres := client.TopGenres(context.Background())
	if len(genres) == 0 {
		fmt.Println("No genres available.")
		return nil
	}
	for _, g := range genres {
		fmt.Println(g)
	}
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	client := newClient(cfg)

	results, err := client.MoviesByGenre(context.Background(), catalog.Genre(args[0]))
	if err != nil {
		return err
	}
	printRanked(results)
	return nil
}
