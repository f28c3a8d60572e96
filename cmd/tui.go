package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/cinemood/internal/config"
	"github.com/papapumpkin/cinemood/internal/shelf"
	"github.com/papapumpkin/cinemood/internal/telemetry"
	"github.com/papapumpkin/cinemood/internal/tui"
)

// tuiCmd launches the interactive client.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive TUI",
	Long: `Launch the cinemood TUI. Type a mood to search, browse the top genres,
and manage your to-watch and watched lists. Lists are restored from the
local database at startup and saved after every change.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	ctx := context.Background()

	store := openStore(ctx, cfg)
	defer store.Close()

	var emitter *telemetry.Emitter
	if cfg.Telemetry && store != nil {
		var err error
		emitter, err = telemetry.NewEmitter(cfg.TelemetryPath())
		if err != nil {
			emitter = nil // session works without the event log
		}
	}
	defer emitter.Close()

	// Watch the database so list edits from another process show up live.
	var watcher *shelf.Watcher
	if store != nil {
		if w, err := shelf.NewWatcher(store.Path()); err == nil {
			if w.Start() == nil {
				watcher = w
				defer w.Stop()
			} else {
				w.Close() // loop never launched; release the handle
			}
		}
	}

	deps := tui.Deps{
		Cfg:     cfg,
		Client:  newClient(cfg),
		Store:   store,
		Watcher: watcher,
		Emitter: emitter,
		Shelf:   store.LoadShelf(ctx),
	}
	if err := tui.Run(deps); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
