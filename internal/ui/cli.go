// Package ui implements the cobra command-line interface.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kasunala/studyflow/internal/assignment"
	"github.com/kasunala/studyflow/internal/config"
	"github.com/kasunala/studyflow/internal/db"
	"github.com/kasunala/studyflow/internal/planner"
	"github.com/kasunala/studyflow/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state. The database is opened lazily so that
// commands like version and config work without touching storage.
type App struct {
	config      *config.Config
	repo        *db.SQLite
	planner     *planner.Planner
	assignments *assignment.Service
	root        *cobra.Command
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "studyflow",
		Short: "A study planner with a drag-and-drop day calendar",
		Long: `StudyFlow plans assignments on a time-gridded day calendar.

Tasks dropped onto an occupied slot are automatically moved to the
nearest free interval; recurring blocked time keeps slots reserved.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.Run(a.repo, a.planner, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.blockCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.resizeCmd())
	a.root.AddCommand(a.doneCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.assignmentsCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

// ensureRepo opens the database and wires the planner on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	a.planner = planner.New(repo, a.config.Window())
	a.assignments = assignment.NewService(repo, repo)
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	if !a.config.UI.Color {
		DisableColor()
	}
	return a.root.Execute()
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("studyflow %s (commit: %s)\n", Version, Commit)
		},
	}
}
