package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fdg312/health-tracker/internal/tracker"
)

func newMealCmd(with withApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meal",
		Short: "Log and remove meals",
	}

	var in tracker.MealInput
	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Log a meal for today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = args[0]
			return with(cmd, func(a *app) error {
				meal, err := a.tracker.AddMeal(cmd.Context(), in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added meal %s (%s, %d kcal)\n", shortID(meal.ID), meal.Slot, meal.Calories)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&in.Slot, "slot", tracker.DefaultMealSlot, "Breakfast|Lunch|Dinner|Snack")
	addCmd.Flags().IntVar(&in.Calories, "kcal", 0, "Calories (0-3000)")
	addCmd.Flags().IntVar(&in.ProteinG, "protein", 0, "Protein grams (0-200)")
	addCmd.Flags().IntVar(&in.CarbsG, "carbs", 0, "Carbs grams (0-400)")
	addCmd.Flags().IntVar(&in.FatG, "fat", 0, "Fat grams (0-200)")

	rmCmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a meal by id or id prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				var ids []string
				for _, m := range a.tracker.Today().Meals {
					ids = append(ids, m.ID)
				}
				id, err := resolveID("meal", args[0], ids)
				if err != nil {
					return err
				}
				ok, err := a.tracker.RemoveMeal(cmd.Context(), id)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("meal %q not found", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed meal %s\n", shortID(id))
				return nil
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List today's meals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				printMeals(cmd.OutOrStdout(), a.tracker.Today().Meals)
				return nil
			})
		},
	}

	cmd.AddCommand(addCmd, rmCmd, listCmd)
	return cmd
}
