package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/aocgo/aoc2025"
	"github.com/aocgo/aoc2025/internal/config"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print a day's puzzle page, fetching and caching it if needed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagEnvFile)
		if err != nil {
			return err
		}
		day, _ := cmd.Flags().GetInt("day")
		if day < 1 {
			return errors.New("--day is required")
		}
		inputs := &aoc.InputStore{
			Dir:     cfg.InputDir,
			Fetcher: &aoc.HTTPFetcher{Session: cfg.Session},
		}
		page, err := inputs.Description(cmd.Context(), cfg.Year, day)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(page)
		return err
	},
}

func init() {
	describeCmd.Flags().IntP("day", "d", 0, "day to describe")
	rootCmd.AddCommand(describeCmd)
}
