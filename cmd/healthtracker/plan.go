package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fdg312/health-tracker/internal/state"
	"github.com/fdg312/health-tracker/internal/tracker"
)

func newPlanCmd(with withApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage workout plans",
	}

	createCmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an empty workout plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				plan, err := a.tracker.CreatePlan(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created plan %s %s\n", shortID(plan.ID), plan.Name)
				return nil
			})
		},
	}

	var ex tracker.ExerciseInput
	addExerciseCmd := &cobra.Command{
		Use:   "add-exercise PLAN_ID NAME",
		Short: "Add an exercise to a plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex.Name = args[1]
			return with(cmd, func(a *app) error {
				planID, err := resolveID("plan", args[0], planIDs(a.tracker.Plans()))
				if err != nil {
					return err
				}
				added, ok, err := a.tracker.AddExerciseToPlan(cmd.Context(), planID, ex)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("plan %q not found", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s %dx%d\n", added.Name, added.TargetSets, added.TargetReps)
				return nil
			})
		},
	}
	addExerciseCmd.Flags().IntVar(&ex.TargetSets, "sets", 3, "Target sets (1-20)")
	addExerciseCmd.Flags().IntVar(&ex.TargetReps, "reps", 10, "Target reps (1-100)")

	rmCmd := &cobra.Command{
		Use:   "rm PLAN_ID",
		Short: "Delete a workout plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				planID, err := resolveID("plan", args[0], planIDs(a.tracker.Plans()))
				if err != nil {
					return err
				}
				ok, err := a.tracker.DeletePlan(cmd.Context(), planID)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("plan %q not found", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s\n", shortID(planID))
				return nil
			})
		},
	}

	startCmd := &cobra.Command{
		Use:   "start PLAN_ID",
		Short: "Start a session from a plan (replaces any active session)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				planID, err := resolveID("plan", args[0], planIDs(a.tracker.Plans()))
				if err != nil {
					return err
				}
				session, ok, err := a.tracker.StartPlan(cmd.Context(), planID)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("plan %q not found", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Started %s\n", session.Name)
				printSession(cmd.OutOrStdout(), session)
				return nil
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List workout plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				printPlans(cmd.OutOrStdout(), a.tracker.Plans())
				return nil
			})
		},
	}

	cmd.AddCommand(createCmd, addExerciseCmd, rmCmd, startCmd, listCmd)
	return cmd
}

func planIDs(plans []state.WorkoutPlan) []string {
	ids := make([]string, len(plans))
	for i, p := range plans {
		ids[i] = p.ID
	}
	return ids
}

func printPlans(out io.Writer, plans []state.WorkoutPlan) {
	if len(plans) == 0 {
		fmt.Fprintln(out, "No plans")
		return
	}
	for _, p := range plans {
		fmt.Fprintf(out, "%s %s\n", shortID(p.ID), p.Name)
		for _, ex := range p.Exercises {
			fmt.Fprintf(out, "    %s %dx%d\n", ex.Name, ex.TargetSets, ex.TargetReps)
		}
	}
}
