package tui

import (
	"strings"

	"github.com/kasunala/studyflow/internal/schedule"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("studyflow"))
	b.WriteString("  ")
	b.WriteString(m.styles.DateHeader.Render(m.date.Format("Monday 2006-01-02")))
	if m.loading {
		b.WriteString(m.styles.Status.Render("  loading..."))
	}
	b.WriteString("\n\n")

	grid := m.grid
	if m.mode == ModeMove {
		grid = m.previewGrid()
	}

	for s := 0; s < grid.numSlots(); s++ {
		b.WriteString(m.renderRow(grid, s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.mode == ModeAdd {
		b.WriteString(m.styles.Prompt.Render("block time at " + m.grid.slotTime(m.cursor) + ": "))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else if m.status != "" {
		if m.statusErr {
			b.WriteString(m.styles.StatusErr.Render(m.status))
		} else {
			b.WriteString(m.styles.Status.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.helpView()))
	return b.String()
}

func (m Model) helpView() string {
	switch m.mode {
	case ModeMove:
		return "j/k: shift  h/l: change day  enter: drop  esc: cancel"
	case ModeAdd:
		return "enter: create  esc: cancel"
	default:
		return m.help.View(m.keys)
	}
}

// renderRow renders one slot: the time label and the cell content.
func (m Model) renderRow(grid *dayGrid, slot int) string {
	label := m.styles.TimeCol.Render(grid.slotTime(slot))
	cell := m.renderCell(grid, slot)

	selected := slot == m.cursor && m.mode != ModeMove
	if m.mode == ModeMove {
		// The ghost span is the live cursor while moving.
		it := grid.itemAt(slot)
		selected = it != nil && it.ID == m.moving.ID
	}
	if selected {
		cell = m.styles.Selected.Render(cell)
	}

	return label + " │ " + cell
}

func (m Model) renderCell(grid *dayGrid, slot int) string {
	it := grid.itemAt(slot)
	if it == nil {
		return m.styles.FreeSlot.Render("·")
	}

	style := m.styles.Task
	switch {
	case m.mode == ModeMove && it.ID == m.moving.ID:
		style = m.styles.Ghost
	case it.Blocked:
		style = m.styles.Blocked
	case it.Completed:
		style = m.styles.TaskDone
	}

	if !grid.isStart(slot) {
		return style.Render("│")
	}

	label := it.Title + "  " + it.StartTime + "-" + it.EndTime()
	if it.Completed {
		label += "  done"
	}
	if m.mode == ModeMove && it.ID == m.moving.ID {
		label = "» " + m.moving.Title + "  " + schedule.MinutesToTime(m.pendingMin) +
			"-" + schedule.MinutesToTime(m.pendingMin+m.moving.DurationMinutes)
	}
	return style.Render(label)
}

// previewGrid shows the day with the picked-up item at its candidate start.
// Conflict resolution happens on drop, so the ghost may visually overlap.
func (m Model) previewGrid() *dayGrid {
	rest := make([]*schedule.Item, 0, len(m.items)+1)
	for _, it := range m.items {
		if it.ID != m.moving.ID {
			rest = append(rest, it)
		}
	}
	ghost := *m.moving
	ghost.Date = m.date
	ghost.StartTime = schedule.MinutesToTime(m.pendingMin)
	rest = append(rest, &ghost)
	return newDayGrid(rest, m.window)
}
