package ui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/kasunala/studyflow/internal/dateutil"
	"github.com/kasunala/studyflow/internal/schedule"
)

func (a *App) showCmd() *cobra.Command {
	var (
		date    string
		gaps    bool
		copyOut bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the day's schedule",
		Long: `Display the scheduled items of one day in chronological order.

Example:
  studyflow show --date=2024-01-15 --gaps`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			d, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}

			ctx := context.Background()
			items, err := a.repo.ListItemsByDate(ctx, d)
			if err != nil {
				return fmt.Errorf("fetching items: %w", err)
			}

			header := d.Format("Monday, January 2, 2006")
			if len(items) == 0 {
				fmt.Printf("Nothing scheduled for %s.\n", header)
				return nil
			}

			fmt.Printf("=== %s ===\n\n", formatHeader(header))

			day := schedule.NewDayWithItems(d, items)
			width := termWidth()
			w := a.config.Window()
			lastEnd := w.StartMinutes
			for _, it := range day.Items() {
				if gaps && it.StartMinutes()-lastEnd >= w.SlotMinutes {
					fmt.Println(gapLine(lastEnd, it.StartMinutes()))
				}
				fmt.Println(agendaLine(it, width))
				lastEnd = max(lastEnd, it.EndMinutes())
			}
			if gaps && w.EndMinutes-lastEnd >= w.SlotMinutes {
				fmt.Println(gapLine(lastEnd, w.EndMinutes))
			}

			if copyOut {
				if err := clipboard.WriteAll(plainAgenda(header, day.Items())); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Println(formatMuted("\nCopied to clipboard."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to show (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVar(&gaps, "gaps", false, "Show free intervals between items")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the agenda to the clipboard")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}
