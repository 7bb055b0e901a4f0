package schedule

// Window bounds the slot search to the schedulable part of a day.
type Window struct {
	StartMinutes int // first minute considered for relocation, e.g. 480 (08:00)
	EndMinutes   int // minute past the last schedulable interval, e.g. 1380 (23:00)
	SlotMinutes  int // user-facing granularity, e.g. 15
}

// DefaultWindow mirrors the default planner configuration.
func DefaultWindow() Window {
	return Window{StartMinutes: 480, EndMinutes: 1380, SlotMinutes: 15}
}

// FindNextAvailableSlot returns a start time for an item of the given
// duration on the given day. When the desired start is free it is returned
// unchanged. Otherwise gaps between the day's items are scanned in
// chronological order from w.StartMinutes and the first gap that fits wins,
// with a final check against the tail of the window.
//
// When no gap in [w.StartMinutes, w.EndMinutes) fits, the desired start is
// returned unchanged: the search fails open and the caller surfaces the
// unresolved conflict. A bounded window cannot guarantee placement; silently
// refusing to answer would lose the request.
func FindNextAvailableSlot(desiredStart string, durationMinutes int, day *Day, excludeID string) string {
	desired := TimeToMinutes(desiredStart)
	if !day.Conflicts(desired, durationMinutes, excludeID) {
		return desiredStart
	}

	return findSlotInWindow(desiredStart, durationMinutes, day, excludeID, DefaultWindow())
}

// FindSlot is FindNextAvailableSlot with an explicit window.
func FindSlot(desiredStart string, durationMinutes int, day *Day, excludeID string, w Window) string {
	if !day.Conflicts(TimeToMinutes(desiredStart), durationMinutes, excludeID) {
		return desiredStart
	}
	return findSlotInWindow(desiredStart, durationMinutes, day, excludeID, w)
}

func findSlotInWindow(desiredStart string, durationMinutes int, day *Day, excludeID string, w Window) string {
	lastEnd := w.StartMinutes
	for _, it := range day.Items() {
		if excludeID != "" && it.ID == excludeID {
			continue
		}
		if it.StartMinutes()-lastEnd >= durationMinutes {
			// Re-check the gap: items are sorted by start but an earlier
			// long-running item can still reach into it.
			if !day.Conflicts(lastEnd, durationMinutes, excludeID) {
				return MinutesToTime(lastEnd)
			}
		}
		lastEnd = max(lastEnd, it.EndMinutes())
	}

	if w.EndMinutes-lastEnd >= durationMinutes {
		return MinutesToTime(lastEnd)
	}

	// Fail open: nothing fits in the window, hand back the original start.
	return desiredStart
}
