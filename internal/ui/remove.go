package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [item-id]",
		Short: "Remove a scheduled item from the calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			item, err := a.repo.GetItem(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.planner.Remove(ctx, item.ID); err != nil {
				return err
			}

			fmt.Printf("Removed %q\n", item.Title)
			return nil
		},
	}
}
