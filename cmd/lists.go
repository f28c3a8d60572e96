package cmd

import (
	"context"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/cinemood/internal/catalog"
	"github.com/papapumpkin/cinemood/internal/config"
	"github.com/papapumpkin/cinemood/internal/shelf"
)

// listsCmd manages the persisted user lists from the command line.
var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show, export, or import your movie lists",
}

var listsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print both lists",
	Args:  cobra.NoArgs,
	RunE:  runListsShow,
}

var listsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write both lists to a TOML snapshot",
	Args:  cobra.NoArgs,
	RunE:  runListsExport,
}

var listsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace both lists from a TOML snapshot",
	Long: `Replace both lists from a TOML snapshot produced by "lists export".
Entries are replayed through the usual list operations, so duplicates are
collapsed and a movie on both lists ends up only on the watched list.`,
	Args: cobra.ExactArgs(1),
	RunE: runListsImport,
}

func init() {
	listsExportCmd.Flags().String("out", "cinemood-lists.toml", "output file")
	listsCmd.AddCommand(listsShowCmd)
	listsCmd.AddCommand(listsExportCmd)
	listsCmd.AddCommand(listsImportCmd)
	rootCmd.AddCommand(listsCmd)
}

// listsSnapshot is the TOML document written by export and read by import.
type listsSnapshot struct {
	ToWatch []shelf.Entry `toml:"towatch"`
	Watched []shelf.Entry `toml:"watched"`
}

func runListsShow(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	ctx := context.Background()

	store := openStore(ctx, cfg)
	defer store.Close()
	s := store.LoadShelf(ctx)

	printList("To watch", s.ToWatch)
	fmt.Println()
	printList("Watched", s.Watched)
	return nil
}

func printList(title string, entries []shelf.Entry) {
	fmt.Printf("%s (%d)\n", title, len(entries))
	if len(entries) == 0 {
		fmt.Println("  empty")
		return
	}
	for _, e := range entries {
		fmt.Printf("  %s\n", e.Title)
	}
}

func runListsExport(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	ctx := context.Background()

	store := openStore(ctx, cfg)
	defer store.Close()
	s := store.LoadShelf(ctx)

	out, _ := cmd.Flags().GetString("out")
	data, err := toml.Marshal(listsSnapshot{ToWatch: s.ToWatch, Watched: s.Watched})
	if err != nil {
		return fmt.Errorf("encoding lists: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("Wrote %d to-watch and %d watched entries to %s\n", len(s.ToWatch), len(s.Watched), out)
	return nil
}

func runListsImport(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	ctx := context.Background()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	var snap listsSnapshot
	if err := toml.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	// Replay through the list operations so the per-list uniqueness and
	// watched-excludes-towatch invariants hold regardless of file contents.
	// Reverse order keeps prepend semantics from flipping the lists.
	var s shelf.Shelf
	for i := len(snap.ToWatch) - 1; i >= 0; i-- {
		e := snap.ToWatch[i]
		s.AddToWatch(catalog.MovieRef{MovieID: e.MovieID, Title: e.Title})
	}
	for i := len(snap.Watched) - 1; i >= 0; i-- {
		e := snap.Watched[i]
		s.MarkWatched(catalog.MovieRef{MovieID: e.MovieID, Title: e.Title})
	}

	store := openStore(ctx, cfg)
	defer store.Close()
	if store == nil {
		return fmt.Errorf("list database unavailable")
	}
	if err := store.Save(ctx, shelf.ListToWatch, s.ToWatch); err != nil {
		return err
	}
	if err := store.Save(ctx, shelf.ListWatched, s.Watched); err != nil {
		return err
	}
	fmt.Printf("Imported %d to-watch and %d watched entries\n", len(s.ToWatch), len(s.Watched))
	return nil
}
