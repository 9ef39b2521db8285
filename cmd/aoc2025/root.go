package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/aocgo/aoc2025/internal/answerlog"
	"github.com/aocgo/aoc2025/internal/config"
)

var (
	flagEnvFile string
	flagDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aoc2025",
	Short: "Advent of Code 2025 solutions.",
	Long: `Advent of Code 2025 solutions. Each part is checked against the sample ` +
		`in its doc comment before it runs on the real input, and every answer is ` +
		`kept in a SQLite history.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if flagDebug {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env", ".env", "file of AOC_* settings; a missing file is ignored")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "debug logging")
}

// openStore opens the answer history named by cfg, or returns nil when it
// is disabled. The store is closed when the process exits.
func openStore(cfg *config.Config) (*answerlog.Store, error) {
	if cfg.DB == "" {
		return nil, nil
	}
	store, err := answerlog.Open(cfg.DB)
	if err != nil {
		return nil, err
	}
	atexit.Register(func() {
		if err := store.Close(); err != nil {
			slog.Error("closing answer history", "err", err)
		}
	})
	return store, nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
