package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aocgo/aoc2025"
	"github.com/aocgo/aoc2025/internal/config"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run solutions against their samples and inputs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagEnvFile)
		if err != nil {
			return err
		}
		day, _ := cmd.Flags().GetInt("day")
		part, _ := cmd.Flags().GetString("part")
		onlySample, _ := cmd.Flags().GetBool("sample")
		skipSample, _ := cmd.Flags().GetBool("skip-sample")

		opts := aoc.Options{
			Year:       cfg.Year,
			Day:        day,
			Part:       part,
			OnlySample: onlySample,
			SkipSample: skipSample,
			Inputs: &aoc.InputStore{
				Dir:     cfg.InputDir,
				Fetcher: &aoc.HTTPFetcher{Session: cfg.Session},
			},
			Out:    cmd.OutOrStdout(),
			Logger: slog.Default(),
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		if store != nil {
			opts.Recorder = store
		}
		return aoc.Run(cmd.Context(), source, &solver{}, opts)
	},
}

func init() {
	runCmd.Flags().IntP("day", "d", 0, "day to run; 0 runs every day")
	runCmd.Flags().StringP("part", "p", "", "part to run")
	runCmd.Flags().Bool("sample", false, "only run samples")
	runCmd.Flags().Bool("skip-sample", false, "skip samples")
	runCmd.MarkFlagsMutuallyExclusive("sample", "skip-sample")
	rootCmd.AddCommand(runCmd)
}
