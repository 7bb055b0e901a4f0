package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kasunala/studyflow/internal/dateutil"
	"github.com/kasunala/studyflow/internal/planner"
)

func (a *App) addCmd() *cobra.Command {
	var (
		assignmentID string
		date         string
		start        string
		duration     int
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Schedule a task on the calendar",
		Long: `Drop a task onto the day calendar. If the slot is occupied the task is
moved to the nearest free interval.

Example:
  studyflow add "Research sources" --assignment=ID --date=2024-01-15 --start=09:00 --duration=60`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			d, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}

			ctx := context.Background()
			res, err := a.planner.Place(ctx, planner.Request{
				Title:    args[0],
				OwnerID:  assignmentID,
				Date:     d,
				Start:    start,
				Duration: duration,
			})
			if err != nil {
				return err
			}

			printPlacement(res, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&assignmentID, "assignment", "", "Owning assignment id (required)")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().IntVar(&duration, "duration", 60, "Duration in minutes (multiple of 15)")

	_ = cmd.MarkFlagRequired("assignment")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

// printPlacement reports a placement result, flagging relocations and
// unresolved conflicts.
func printPlacement(res *planner.Result, title string) {
	it := res.Item
	switch {
	case res.Unresolved:
		fmt.Printf("%s %q kept at %s-%s: no free slot in the day window\n",
			formatWarn("conflict:"), title, it.StartTime, it.EndTime())
	case res.Status == planner.StatusRescheduled:
		fmt.Printf("Scheduled %q at %s-%s %s\n",
			title, it.StartTime, it.EndTime(),
			formatMuted(fmt.Sprintf("(moved from requested slot, id %s)", it.ID)))
	default:
		fmt.Printf("Scheduled %q at %s-%s %s\n",
			title, it.StartTime, it.EndTime(), formatMuted("(id "+it.ID+")"))
	}
}
