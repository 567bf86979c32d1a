package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWaterCmd(with withApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "water",
		Short: "Log water intake",
	}

	addCmd := &cobra.Command{
		Use:   "add ML",
		Short: "Add a portion of water in millilitres",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ml, err := parseIntArg("ml", args[0])
			if err != nil {
				return err
			}
			return with(cmd, func(a *app) error {
				ok, err := a.tracker.AddWater(cmd.Context(), ml)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("ml must be > 0")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Water today: %d mL\n", a.tracker.Today().HydrationMl)
				return nil
			})
		},
	}

	undoCmd := &cobra.Command{
		Use:   "undo",
		Short: "Undo the last water portion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				ok, err := a.tracker.UndoLastWater(cmd.Context())
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing to undo")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Water today: %d mL\n", a.tracker.Today().HydrationMl)
				return nil
			})
		},
	}

	cmd.AddCommand(addCmd, undoCmd)
	return cmd
}
