// Package tui implements the interactive day-calendar view.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the day grid.
type Styles struct {
	Title      lipgloss.Style
	DateHeader lipgloss.Style
	TimeCol    lipgloss.Style
	FreeSlot   lipgloss.Style
	Task       lipgloss.Style
	TaskDone   lipgloss.Style
	Blocked    lipgloss.Style
	Selected   lipgloss.Style
	Ghost      lipgloss.Style
	Status     lipgloss.Style
	StatusErr  lipgloss.Style
	Help       lipgloss.Style
	Prompt     lipgloss.Style
}

// NewStyles builds the default style set.
func NewStyles() Styles {
	var (
		accent  = lipgloss.AdaptiveColor{Light: "25", Dark: "39"}
		muted   = lipgloss.AdaptiveColor{Light: "245", Dark: "241"}
		done    = lipgloss.AdaptiveColor{Light: "28", Dark: "35"}
		blocked = lipgloss.AdaptiveColor{Light: "94", Dark: "179"}
		errc    = lipgloss.AdaptiveColor{Light: "124", Dark: "203"}
	)

	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		DateHeader: lipgloss.NewStyle().Bold(true),
		TimeCol:    lipgloss.NewStyle().Foreground(muted),
		FreeSlot:   lipgloss.NewStyle().Foreground(muted),
		Task:       lipgloss.NewStyle().Foreground(accent),
		TaskDone:   lipgloss.NewStyle().Foreground(done).Strikethrough(true),
		Blocked:    lipgloss.NewStyle().Foreground(blocked),
		Selected:   lipgloss.NewStyle().Reverse(true),
		Ghost:      lipgloss.NewStyle().Foreground(accent).Italic(true),
		Status:     lipgloss.NewStyle().Foreground(muted),
		StatusErr:  lipgloss.NewStyle().Foreground(errc),
		Help:       lipgloss.NewStyle().Foreground(muted),
		Prompt:     lipgloss.NewStyle().Foreground(accent),
	}
}
