package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/aocgo/aoc2025/internal/config"
)

var answersCmd = &cobra.Command{
	Use:   "answers",
	Short: "List recorded answers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagEnvFile)
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		if store == nil {
			return errors.New("answer history is disabled (AOC_DB is empty)")
		}
		day, _ := cmd.Flags().GetInt("day")
		answers, err := store.List(cmd.Context(), cfg.Year, day)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DAY\tPART\tANSWER\tTOOK\tWHEN\tRUN")
		for _, a := range answers {
			fmt.Fprintf(w, "%d\t%s\t%s\t%v\t%s\t%s\n",
				a.Day, a.Part, a.Value, a.Elapsed.Round(time.Microsecond),
				a.At.Local().Format(time.DateTime), a.Run)
		}
		return w.Flush()
	},
}

func init() {
	answersCmd.Flags().IntP("day", "d", 0, "only list this day")
	rootCmd.AddCommand(answersCmd)
}
