package ui

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kasunala/studyflow/internal/planner"
)

func (a *App) resizeCmd() *cobra.Command {
	var duration int

	cmd := &cobra.Command{
		Use:   "resize [item-id]",
		Short: "Change the duration of a scheduled item",
		Long: `Change an item's duration in place. If the longer interval collides with
a neighbor the item is moved to the nearest slot that fits.

Example:
  studyflow resize 3f1b... --duration=90`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			item, err := a.repo.GetItem(ctx, args[0])
			if err != nil {
				return err
			}

			res, err := a.planner.Place(ctx, planner.Request{
				ItemID:   item.ID,
				Date:     item.Date,
				Start:    item.StartTime,
				Duration: duration,
			})
			if err != nil {
				return err
			}

			printPlacement(res, item.Title)
			return nil
		},
	}

	cmd.Flags().IntVar(&duration, "duration", 0, "New duration in minutes (required)")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}
