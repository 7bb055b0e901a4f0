package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Tasks: cyan for scheduled work
	colorTask = color.New(color.FgCyan)

	// Blocked time: dim/grey, it is reserved, not actionable
	colorBlocked = color.New(color.FgWhite, color.Faint)

	// Completed: green with strike-through feel
	colorDone = color.New(color.FgGreen)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Warnings (unresolved conflicts): yellow
	colorWarn = color.New(color.FgYellow)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatTask(s string) string {
	return colorTask.Sprint(s)
}

func formatBlocked(s string) string {
	return colorBlocked.Sprint(s)
}

func formatDone(s string) string {
	return colorDone.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
