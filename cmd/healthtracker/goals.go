package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fdg312/health-tracker/internal/state"
)

func newGoalsCmd(with withApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Show daily and weekly goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				printGoals(cmd.OutOrStdout(), a.tracker.Goals())
				return nil
			})
		},
	}

	var g state.Goals
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Change goals; unset flags keep their current value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				goals := a.tracker.Goals()
				flags := cmd.Flags()
				if flags.Changed("calories") {
					goals.Calories = g.Calories
				}
				if flags.Changed("protein") {
					goals.ProteinG = g.ProteinG
				}
				if flags.Changed("carbs") {
					goals.CarbsG = g.CarbsG
				}
				if flags.Changed("fat") {
					goals.FatG = g.FatG
				}
				if flags.Changed("water") {
					goals.HydrationMl = g.HydrationMl
				}
				if flags.Changed("workouts") {
					goals.WeeklyWorkouts = g.WeeklyWorkouts
				}
				if err := a.tracker.SetGoals(cmd.Context(), goals); err != nil {
					return err
				}
				printGoals(cmd.OutOrStdout(), a.tracker.Goals())
				return nil
			})
		},
	}
	setCmd.Flags().IntVar(&g.Calories, "calories", 0, "Daily calories")
	setCmd.Flags().IntVar(&g.ProteinG, "protein", 0, "Daily protein grams")
	setCmd.Flags().IntVar(&g.CarbsG, "carbs", 0, "Daily carbs grams")
	setCmd.Flags().IntVar(&g.FatG, "fat", 0, "Daily fat grams")
	setCmd.Flags().IntVar(&g.HydrationMl, "water", 0, "Daily water mL")
	setCmd.Flags().IntVar(&g.WeeklyWorkouts, "workouts", 0, "Workouts per week")

	cmd.AddCommand(setCmd)
	return cmd
}

func printGoals(out io.Writer, g state.Goals) {
	fmt.Fprintf(out, "Calories: %d kcal\n", g.Calories)
	fmt.Fprintf(out, "Protein:  %d g\n", g.ProteinG)
	fmt.Fprintf(out, "Carbs:    %d g\n", g.CarbsG)
	fmt.Fprintf(out, "Fat:      %d g\n", g.FatG)
	fmt.Fprintf(out, "Water:    %d mL\n", g.HydrationMl)
	fmt.Fprintf(out, "Workouts: %d per week\n", g.WeeklyWorkouts)
}
