package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/fdg312/health-tracker/internal/calendar"
	"github.com/fdg312/health-tracker/internal/state"
)

func newStatusCmd(with withApp) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"today"},
		Short:   "Show today's totals, hydration, supplements and weekly workouts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				printStatus(cmd.OutOrStdout(), a)
				return nil
			})
		},
	}
}

func printStatus(out io.Writer, a *app) {
	tr := a.tracker
	goals := tr.Goals()
	today := tr.Today()
	week := tr.Week()
	p := tr.Progress()
	now := a.clock.Now()

	fmt.Fprintf(out, "Date: %s (%s)  Week: %s\n", calendar.DisplayDate(now), today.DateKey, week.WeekKey)
	fmt.Fprintf(out, "Calories:  %5d / %d kcal %s %d%%\n", today.Totals.Calories, goals.Calories, bar(p.Calories), p.Calories)
	fmt.Fprintf(out, "Protein:   %5d / %d g    %s %d%%\n", today.Totals.ProteinG, goals.ProteinG, bar(p.ProteinG), p.ProteinG)
	fmt.Fprintf(out, "Carbs:     %5d / %d g    %s %d%%\n", today.Totals.CarbsG, goals.CarbsG, bar(p.CarbsG), p.CarbsG)
	fmt.Fprintf(out, "Fat:       %5d / %d g    %s %d%%\n", today.Totals.FatG, goals.FatG, bar(p.FatG), p.FatG)
	fmt.Fprintf(out, "Water:     %5d / %d mL   %s %d%%\n", today.HydrationMl, goals.HydrationMl, bar(p.Hydration), p.Hydration)
	fmt.Fprintf(out, "Supplements: %d/%d taken\n", today.SupplementsTaken, len(today.Supplements))
	fmt.Fprintf(out, "Workouts:  %d / %d this week %s %d%%\n", len(week.CompletedWorkouts), goals.WeeklyWorkouts, bar(p.Workouts), p.Workouts)

	if s := tr.ActiveSession(); s != nil {
		fmt.Fprintf(out, "Active session: %s (%d exercises, started %s)\n", s.Name, len(s.Exercises), s.StartedAt.Format("15:04"))
	}
}

func printMeals(out io.Writer, meals []state.Meal) {
	if len(meals) == 0 {
		fmt.Fprintln(out, "No meals logged today")
		return
	}
	fmt.Fprintln(out, "ID\tSLOT\tNAME\tKCAL\tP\tC\tF")
	for _, m := range meals {
		fmt.Fprintf(out, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n", shortID(m.ID), m.Slot, m.Name, m.Calories, m.ProteinG, m.CarbsG, m.FatG)
	}
}

func printSupplements(out io.Writer, supplements map[string]state.SupplementEntry) {
	if len(supplements) == 0 {
		fmt.Fprintln(out, "No supplements")
		return
	}
	names := make([]string, 0, len(supplements))
	for name := range supplements {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s := supplements[name]
		mark := "[ ]"
		if s.Taken {
			mark = "[x]"
		}
		fmt.Fprintf(out, "%s %s %s\n", mark, name, s.Dose)
	}
}
