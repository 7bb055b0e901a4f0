package schedule

import "time"

// Pattern identifies how a blocked-time window repeats.
type Pattern string

const (
	PatternNone   Pattern = ""
	PatternDaily  Pattern = "daily"
	PatternWeekly Pattern = "weekly"
)

// Valid returns true if the pattern is a recognized value.
func (p Pattern) Valid() bool {
	switch p {
	case PatternNone, PatternDaily, PatternWeekly:
		return true
	default:
		return false
	}
}

// WeekdaySet selects the weekdays a weekly pattern repeats on.
type WeekdaySet map[time.Weekday]bool

// ExpandRecurrence materializes a recurrence pattern into the ordered list of
// calendar dates it covers. The start date is always the first element, even
// when a weekly pattern does not select its weekday. Daily fills every date
// through end inclusive; weekly keeps the dates after start whose weekday is
// selected. An end before start yields just the start date rather than an
// error. Iteration is by calendar day, so DST shifts cannot drift the dates.
func ExpandRecurrence(start, end time.Time, pattern Pattern, weekdays WeekdaySet) []time.Time {
	start = truncateToDay(start)
	end = truncateToDay(end)

	dates := []time.Time{start}
	if pattern != PatternDaily && pattern != PatternWeekly {
		return dates
	}

	for d := start.AddDate(0, 0, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
		switch pattern {
		case PatternDaily:
			dates = append(dates, d)
		case PatternWeekly:
			if weekdays[d.Weekday()] {
				dates = append(dates, d)
			}
		}
	}
	return dates
}
