package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [item-id]",
		Short: "Toggle completion of a scheduled item",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			item, err := a.planner.ToggleComplete(context.Background(), args[0])
			if err != nil {
				return err
			}

			if item.Completed {
				fmt.Printf("%s %q\n", formatDone("Completed"), item.Title)
			} else {
				fmt.Printf("Reopened %q\n", item.Title)
			}
			return nil
		},
	}
}
