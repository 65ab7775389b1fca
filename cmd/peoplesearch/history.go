package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"linkedin-people-search/internal/config"
	"linkedin-people-search/internal/storage"
	"linkedin-people-search/internal/utils"
)

func newHistoryCmd(configPath *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent search runs from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.JournalPath == "" {
				return errors.New("journal_path is not configured")
			}

			journal, err := storage.OpenJournal(cfg.JournalPath)
			if err != nil {
				return err
			}
			defer journal.Close()

			runs, err := journal.Runs.ListRecentRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STARTED\tTERM\tMODE\tSTATUS\tRESULTS\tSKIPPED\tTOOK")
			for _, r := range runs {
				took := "-"
				if !r.FinishedAt.IsZero() {
					took = utils.FormatDuration(r.FinishedAt.Sub(r.StartedAt))
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
					r.StartedAt.Format("2006-01-02 15:04:05"), r.Term, r.Mode, r.Status, r.Results, r.Skipped, took)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs to show")
	return cmd
}
