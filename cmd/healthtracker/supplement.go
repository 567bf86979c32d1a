package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSupplementCmd(with withApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "supplement",
		Aliases: []string{"supp"},
		Short:   "Manage today's supplement checklist",
	}

	addCmd := &cobra.Command{
		Use:   "add NAME [DOSE]",
		Short: "Add or replace a supplement (unchecked)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dose := ""
			if len(args) > 1 {
				dose = args[1]
			}
			return with(cmd, func(a *app) error {
				ok, err := a.tracker.AddSupplement(cmd.Context(), args[0], dose)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("supplement name is empty")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added supplement %s\n", args[0])
				return nil
			})
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle NAME",
		Short: "Mark a supplement taken or not taken",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				ok, err := a.tracker.ToggleSupplement(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("supplement %q not found", args[0])
				}
				state := "not taken"
				if a.tracker.Today().Supplements[args[0]].Taken {
					state = "taken"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], state)
				return nil
			})
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm NAME",
		Short: "Remove a supplement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				ok, err := a.tracker.RemoveSupplement(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("supplement %q not found", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed supplement %s\n", args[0])
				return nil
			})
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Uncheck all supplements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				if err := a.tracker.ResetSupplements(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All supplements unchecked")
				return nil
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show today's checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				printSupplements(cmd.OutOrStdout(), a.tracker.Today().Supplements)
				return nil
			})
		},
	}

	cmd.AddCommand(addCmd, toggleCmd, rmCmd, resetCmd, listCmd)
	return cmd
}
