package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kasunala/studyflow/internal/dateutil"
	"github.com/kasunala/studyflow/internal/planner"
	"github.com/kasunala/studyflow/internal/schedule"
)

func (a *App) blockCmd() *cobra.Command {
	var (
		date     string
		until    string
		start    string
		duration int
		repeat   string
		days     string
	)

	cmd := &cobra.Command{
		Use:   "block [title]",
		Short: "Reserve blocked time, optionally recurring",
		Long: `Reserve a time window so tasks cannot be scheduled over it.

With --repeat the window is expanded into one independent entry per date;
dates that already have a conflicting item are skipped.

Examples:
  studyflow block "Lunch" --start=12:00 --duration=60
  studyflow block "Gym" --start=17:00 --duration=90 --repeat=weekly --days=mon,wed,fri --until=2024-03-01`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			startDate, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}
			endDate := startDate
			if until != "" {
				endDate, err = dateutil.ParseDate(until)
				if err != nil {
					return err
				}
			}

			pattern := schedule.Pattern(repeat)
			if !pattern.Valid() {
				return fmt.Errorf("invalid repeat pattern %q: use daily or weekly", repeat)
			}

			var weekdays schedule.WeekdaySet
			if pattern == schedule.PatternWeekly {
				weekdays, err = dateutil.ParseWeekdays(days)
				if err != nil {
					return err
				}
			}

			ctx := context.Background()
			res, err := a.planner.PlaceBlocked(ctx, planner.BlockedRequest{
				Title:     args[0],
				StartDate: startDate,
				EndDate:   endDate,
				Start:     start,
				Duration:  duration,
				Pattern:   pattern,
				Weekdays:  weekdays,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Reserved %d blocked-time %s\n", len(res.Placed), plural(len(res.Placed), "entry", "entries"))
			if res.Skipped > 0 {
				fmt.Printf("%s %d %s skipped: slot already occupied on those dates\n",
					formatWarn("note:"), res.Skipped, plural(res.Skipped, "occurrence", "occurrences"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "First date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&until, "until", "", "Last date for recurrence (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().IntVar(&duration, "duration", 60, "Duration in minutes")
	cmd.Flags().StringVar(&repeat, "repeat", "", "Recurrence: daily or weekly")
	cmd.Flags().StringVar(&days, "days", "", "Weekdays for weekly repeat (e.g. mon,wed,fri)")

	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
