package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/cinemood/internal/catalog"
	"github.com/papapumpkin/cinemood/internal/config"
	"github.com/papapumpkin/cinemood/internal/shelf"
)

var rootCmd = &cobra.Command{
	Use:   "cinemood",
	Short: "Mood-based movie discovery in your terminal",
	Long: `Cinemood finds movies to match the mood you describe, lets you browse
the top genres, and keeps your to-watch and watched lists on this machine.`,
	RunE: runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .cinemood.yaml)")
	rootCmd.PersistentFlags().String("api-base", "", "backend base URL")
	_ = viper.BindPFlag("api_base", rootCmd.PersistentFlags().Lookup("api-base"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".cinemood")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("CINEMOOD")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault launches the TUI.
func runRootDefault(cmd *cobra.Command, args []string) error {
	return runTUI(cmd, args)
}

// newClient builds the gateway client from config. The base address is
// resolved exactly once, here.
func newClient(cfg config.Config) *catalog.Client {
	return catalog.New(cfg.APIBase, catalog.Options{
		Timeout:     cfg.RequestTimeout,
		Ack:         catalog.ParseAckPolicy(cfg.FeedbackAck),
		SearchLimit: cfg.SearchLimit,
		GenreLimit:  cfg.GenreLimit,
	})
}

// openStore opens the list database under the data directory. Failure is not
// fatal: a nil store keeps the session in-memory only.
func openStore(ctx context.Context, cfg config.Config) *shelf.Store {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "warning: lists will not be saved: %v\n", err)
		return nil
	}
	store, err := shelf.Open(ctx, cfg.DBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: lists will not be saved: %v\n", err)
		return nil
	}
	return store
}

// printRanked writes a plain results table for the headless commands.
func printRanked(results []catalog.RankedResult) {
	if len(results) == 0 {
		fmt.Println("No results.")
		return
	}
	for _, r := range results {
		fmt.Printf("%3d. %-52s %s\n", r.Rank, r.Title, r.Rating)
	}
}
