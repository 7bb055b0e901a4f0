// Package dateutil provides date parsing and validation utilities.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kasunala/studyflow/internal/schedule"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidWeekday    = errors.New("invalid weekday name")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDate renders a date in YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseWeekdays parses a comma-separated list of weekday names into a
// weekday set. Names are case-insensitive and may be abbreviated to three
// letters ("mon", "tue", ...).
func ParseWeekdays(s string) (schedule.WeekdaySet, error) {
	set := make(schedule.WeekdaySet)
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		wd, ok := weekdayMap[name]
		if !ok {
			wd, ok = abbreviatedWeekday(name)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, part)
		}
		set[wd] = true
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: empty list", ErrInvalidWeekday)
	}
	return set, nil
}

func abbreviatedWeekday(name string) (time.Weekday, bool) {
	if len(name) != 3 {
		return 0, false
	}
	for full, wd := range weekdayMap {
		if strings.HasPrefix(full, name) {
			return wd, true
		}
	}
	return 0, false
}
