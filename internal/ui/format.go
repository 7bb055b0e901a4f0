package ui

import (
	"fmt"
	"strings"

	"github.com/kasunala/studyflow/internal/schedule"
)

// agendaLine renders one item row of the day agenda.
func agendaLine(it *schedule.Item, width int) string {
	mark := "[ ]"
	if it.Completed {
		mark = "[x]"
	}

	title := it.Title
	maxTitle := width - 22 // interval + mark + padding
	if maxTitle > 8 && len(title) > maxTitle {
		title = title[:maxTitle-1] + "…"
	}

	line := fmt.Sprintf("%s-%s %s %s", it.StartTime, it.EndTime(), mark, title)
	switch {
	case it.Blocked:
		return formatBlocked(line)
	case it.Completed:
		return formatDone(line)
	default:
		return formatTask(line)
	}
}

// plainAgenda renders a day's items without color, for the clipboard.
func plainAgenda(header string, items []*schedule.Item) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for _, it := range items {
		mark := "[ ]"
		if it.Completed {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "%s-%s %s %s\n", it.StartTime, it.EndTime(), mark, it.Title)
	}
	return b.String()
}

// gapLine renders the free interval between two scheduled items.
func gapLine(fromMin, toMin int) string {
	return formatMuted(fmt.Sprintf("%s-%s %d min free",
		schedule.MinutesToTime(fromMin), schedule.MinutesToTime(toMin), toMin-fromMin))
}
