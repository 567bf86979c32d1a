package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fdg312/health-tracker/internal/state"
	"github.com/fdg312/health-tracker/internal/tracker"
)

var errNoSession = errors.New("no active session")

func newSessionCmd(with withApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Track the active workout session",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				s := a.tracker.ActiveSession()
				if s == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "No active session")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (started %s)\n", s.Name, s.StartedAt.Format("15:04"))
				printSession(cmd.OutOrStdout(), s)
				return nil
			})
		},
	}

	var sets, reps int
	var weight float64
	updateCmd := &cobra.Command{
		Use:   "update EXERCISE_ID",
		Short: "Record sets, reps or weight for a session exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd tracker.SessionExerciseUpdate
			if cmd.Flags().Changed("sets") {
				upd.SetsCompleted = &sets
			}
			if cmd.Flags().Changed("reps") {
				upd.AvgReps = &reps
			}
			if cmd.Flags().Changed("weight") {
				upd.Weight = &weight
			}
			return with(cmd, func(a *app) error {
				id, err := resolveID("exercise", args[0], sessionExerciseIDs(a.tracker.ActiveSession()))
				if err != nil {
					return err
				}
				ok, err := a.tracker.UpdateSessionExercise(cmd.Context(), id, upd)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("exercise %q not found in the active session", args[0])
				}
				printSession(cmd.OutOrStdout(), a.tracker.ActiveSession())
				return nil
			})
		},
	}
	updateCmd.Flags().IntVar(&sets, "sets", 0, "Sets completed (0-50)")
	updateCmd.Flags().IntVar(&reps, "reps", 0, "Average reps (0-100)")
	updateCmd.Flags().Float64Var(&weight, "weight", 0, "Working weight (0-1000)")

	rmCmd := &cobra.Command{
		Use:   "rm-exercise EXERCISE_ID",
		Short: "Drop an exercise from the active session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				id, err := resolveID("exercise", args[0], sessionExerciseIDs(a.tracker.ActiveSession()))
				if err != nil {
					return err
				}
				ok, err := a.tracker.RemoveSessionExercise(cmd.Context(), id)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("exercise %q not found in the active session", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Exercise removed")
				return nil
			})
		},
	}

	cancelCmd := &cobra.Command{
		Use:   "cancel",
		Short: "Discard the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				ok, err := a.tracker.CancelSession(cmd.Context())
				if err != nil {
					return err
				}
				if !ok {
					return errNoSession
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Session cancelled")
				return nil
			})
		},
	}

	finishCmd := &cobra.Command{
		Use:   "finish MINUTES",
		Short: "Finish the active session and record the workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := parseIntArg("minutes", args[0])
			if err != nil {
				return err
			}
			return with(cmd, func(a *app) error {
				w, ok, err := a.tracker.FinishSession(cmd.Context(), minutes)
				if err != nil {
					return err
				}
				if !ok {
					return errNoSession
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s, %d min on %s\n", w.Name, w.Minutes, w.DisplayDate)
				return nil
			})
		},
	}

	cmd.AddCommand(showCmd, updateCmd, rmCmd, cancelCmd, finishCmd)
	return cmd
}

func sessionExerciseIDs(s *state.ActiveSession) []string {
	if s == nil {
		return nil
	}
	ids := make([]string, len(s.Exercises))
	for i, ex := range s.Exercises {
		ids[i] = ex.ID
	}
	return ids
}

func printSession(out io.Writer, s *state.ActiveSession) {
	if s == nil {
		return
	}
	for _, ex := range s.Exercises {
		fmt.Fprintf(out, "  %s %-16s %d/%d sets  %d reps  %.1f kg\n",
			shortID(ex.ID), ex.Name, ex.SetsCompleted, ex.TargetSets, ex.AvgReps, ex.Weight)
	}
}
