package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fdg312/health-tracker/internal/calendar"
)

func newHistoryCmd(with withApp) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show daily summaries for the last days (oldest first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				n := days
				if !cmd.Flags().Changed("days") {
					n = a.cfg.HistoryDefaultDays
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "DATE\tKCAL\tP\tC\tF\tWATER_ML\tSUPPS")
				for _, d := range a.tracker.RecentDays(n) {
					fmt.Fprintf(out, "%s\t%d\t%d\t%d\t%d\t%d\t%d/%d\n",
						d.DateKey, d.Totals.Calories, d.Totals.ProteinG, d.Totals.CarbsG, d.Totals.FatG,
						d.HydrationMl, d.SupplementsTaken, len(d.Supplements))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "Number of days (default HISTORY_DEFAULT_DAYS)")

	eventsCmd := &cobra.Command{
		Use:   "events [DATE]",
		Short: "Show the event log of a day (YYYY-MM-DD, default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				key := calendar.DateKey(a.clock.Now())
				if len(args) == 1 {
					t, err := calendar.ParseDateKey(strings.TrimSpace(args[0]), a.clock.Now().Location())
					if err != nil {
						return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", args[0])
					}
					key = calendar.DateKey(t)
				}
				events := a.tracker.Events(key)
				if len(events) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No events on %s\n", key)
					return nil
				}
				for _, e := range events {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %-18s %s\n", e.Timestamp.Format("15:04:05"), e.Type, string(e.Data))
				}
				return nil
			})
		},
	}

	cmd.AddCommand(eventsCmd)
	return cmd
}
