package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kasunala/studyflow/internal/dateutil"
)

func (a *App) assignmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assignments",
		Aliases: []string{"asg"},
		Short:   "Manage assignments",
	}

	cmd.AddCommand(a.assignmentsAddCmd())
	cmd.AddCommand(a.assignmentsListCmd())
	cmd.AddCommand(a.assignmentsRemoveCmd())

	return cmd
}

func (a *App) assignmentsAddCmd() *cobra.Command {
	var (
		subject string
		due     string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			var dueDate *time.Time
			if due != "" {
				d, err := dateutil.ParseDate(due)
				if err != nil {
					return err
				}
				dueDate = &d
			}

			asg, err := a.assignments.Create(context.Background(), args[0], subject, dueDate)
			if err != nil {
				return err
			}

			fmt.Printf("Created assignment %q %s\n", asg.Title, formatMuted("(id "+asg.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject or course name")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

func (a *App) assignmentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List assignments with progress",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			list, err := a.assignments.List(ctx)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Println("No assignments yet.")
				return nil
			}

			for _, asg := range list {
				p, err := a.assignments.Progress(ctx, asg.ID)
				if err != nil {
					return err
				}

				line := fmt.Sprintf("%-30s %3d%% (%d/%d tasks)", asg.Title, p.Percent(), p.Completed, p.Total)
				if asg.DueDate != nil {
					line += formatMuted("  due " + dateutil.FormatDate(*asg.DueDate))
				}
				if p.Total > 0 && p.Completed == p.Total {
					fmt.Println(formatDone(line))
				} else {
					fmt.Println(line)
				}
				fmt.Println(formatMuted("  id " + asg.ID))
			}
			return nil
		},
	}
}

func (a *App) assignmentsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [assignment-id]",
		Short: "Delete an assignment and its scheduled items",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			removed, err := a.assignments.Delete(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Deleted assignment and %d scheduled %s\n", removed, plural(removed, "item", "items"))
			return nil
		},
	}
}
