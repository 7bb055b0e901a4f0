// Package schedule implements the calendar scheduling core: time arithmetic,
// overlap detection, slot search and recurrence expansion.
package schedule

import "fmt"

// MinutesPerDay is 24 hours * 60 minutes.
const MinutesPerDay = 1440

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Returns 0 for malformed input; callers validate before trusting it.
func TimeToMinutes(t string) int {
	if len(t) != 5 || t[2] != ':' {
		return 0
	}
	for _, i := range []int{0, 1, 3, 4} {
		if t[i] < '0' || t[i] > '9' {
			return 0
		}
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}

// MinutesToTime converts minutes since midnight to "HH:MM".
// The hour component wraps modulo 24 so that cross-midnight end times format
// as next-day wall-clock values. Raw minute counts beyond one day stay valid
// internally; wrapping happens only here, at the display boundary.
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	m %= MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// CalculateEndTime returns the wall-clock end time for a start time and
// duration in minutes. A duration that crosses midnight produces an end time
// lexically smaller than the start; comparison logic must treat that as
// "next day", not as invalid. Use Item.EndMinutes for unwrapped arithmetic.
func CalculateEndTime(start string, durationMinutes int) string {
	return MinutesToTime(TimeToMinutes(start) + durationMinutes)
}

// ValidTime reports whether t is a well-formed "HH:MM" wall-clock value.
func ValidTime(t string) bool {
	if len(t) != 5 || t[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if t[i] < '0' || t[i] > '9' {
			return false
		}
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours < 24 && mins < 60
}
