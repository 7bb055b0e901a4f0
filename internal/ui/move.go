package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kasunala/studyflow/internal/dateutil"
	"github.com/kasunala/studyflow/internal/planner"
)

func (a *App) moveCmd() *cobra.Command {
	var (
		date  string
		start string
	)

	cmd := &cobra.Command{
		Use:   "move [item-id]",
		Short: "Move a scheduled item to a new slot",
		Long: `Move an item to a different date or start time, keeping its duration.
Conflicting targets are resolved to the nearest free interval.

Example:
  studyflow move 3f1b... --date=2024-01-16 --start=14:00`,
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

			d := item.Date
			if date != "" {
				if d, err = dateutil.ParseDate(date); err != nil {
					return err
				}
			}
			s := item.StartTime
			if start != "" {
				s = start
			}

			res, err := a.planner.Place(ctx, planner.Request{
				ItemID:   item.ID,
				Date:     d,
				Start:    s,
				Duration: item.DurationMinutes,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s: ", dateutil.FormatDate(res.Item.Date))
			printPlacement(res, item.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD, default: unchanged)")
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM, default: unchanged)")

	return cmd
}
