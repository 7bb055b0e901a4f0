package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kasunala/studyflow/internal/importer"
)

func (a *App) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file.yaml]",
		Short: "Import an assignment and its tasks from YAML",
		Long: `Import an assignment with pre-planned tasks from a YAML file.
Each task is scheduled through the normal conflict resolution, so tasks
landing on occupied slots are moved to free intervals.

Example file:

  assignment:
    title: History essay
    subject: history
    due_date: "2024-02-01"
  tasks:
    - title: Research sources
      date: "2024-01-15"
      start: "09:00"
      duration: 60`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			res, err := importer.Import(context.Background(), a.assignments, a.planner, data)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %q with %d %s", res.Assignment.Title, res.Placed, plural(res.Placed, "task", "tasks"))
			if res.Rescheduled > 0 {
				fmt.Printf(" (%d moved to free slots)", res.Rescheduled)
			}
			fmt.Println()
			return nil
		},
	}
}
