package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kasunala/studyflow/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Print the configuration after merging defaults, the config file and
environment overrides. With --init a default config file is written if
none exists.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()
			fmt.Printf("Config file: %s\n\n", formatMuted(path))

			if initFile {
				if _, err := os.Stat(path); os.IsNotExist(err) {
					if err := a.config.SaveTo(path); err != nil {
						return fmt.Errorf("writing config: %w", err)
					}
					fmt.Println("Created config file with defaults.")
				} else {
					fmt.Println("Config file already exists, leaving it untouched.")
				}
				fmt.Println()
			}

			fmt.Printf("%s\n", formatHeader("[planner]"))
			fmt.Printf("  day_start    = %s\n", a.config.Planner.DayStart)
			fmt.Printf("  day_end      = %s\n", a.config.Planner.DayEnd)
			fmt.Printf("  slot_minutes = %d\n", a.config.Planner.SlotMinutes)
			fmt.Printf("%s\n", formatHeader("[storage]"))
			fmt.Printf("  db_path = %s\n", a.config.Storage.DBPath)
			fmt.Printf("%s\n", formatHeader("[ui]"))
			fmt.Printf("  color = %v\n", a.config.UI.Color)
			return nil
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Write a default config file if none exists")

	return cmd
}
