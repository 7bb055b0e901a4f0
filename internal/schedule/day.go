package schedule

import (
	"slices"
	"time"
)

// Day holds all items scheduled on a single date, sorted by start minute.
//
// Overlap policy is strict: any two items on the same date conflict when
// their intervals intersect, whether or not either is blocked time. The
// half-open test `candStart < itemEnd && candEnd > itemStart` means items
// touching at an exact boundary never conflict.
type Day struct {
	Date  time.Time
	items []*Item
}

// NewDay creates an empty Day for the given date.
func NewDay(date time.Time) *Day {
	return &Day{Date: truncateToDay(date)}
}

// NewDayWithItems creates a Day from a slice of items. Items for other dates
// are ignored. Existing overlaps among the input are tolerated; the Day is a
// snapshot for conflict checks, not a storage constraint.
func NewDayWithItems(date time.Time, items []*Item) *Day {
	d := NewDay(date)
	for _, it := range items {
		if it != nil && it.SameDate(date) {
			d.items = append(d.items, it)
		}
	}
	d.sort()
	return d
}

// Items returns a copy of the item slice, sorted by start minute.
func (d *Day) Items() []*Item {
	out := make([]*Item, len(d.items))
	copy(out, d.items)
	return out
}

// Len returns the number of items in the day.
func (d *Day) Len() int {
	return len(d.items)
}

// Add inserts an item, maintaining sorted order. No conflict check: callers
// resolve conflicts through FindConflict or FindNextAvailableSlot first.
func (d *Day) Add(it *Item) {
	if it == nil {
		return
	}
	d.items = append(d.items, it)
	d.sort()
}

// Remove removes an item by id and returns it, or nil if not present.
func (d *Day) Remove(id string) *Item {
	for i, it := range d.items {
		if it.ID == id {
			d.items = slices.Delete(d.items, i, i+1)
			return it
		}
	}
	return nil
}

// FindConflict returns the first item whose interval intersects the
// candidate [startMin, startMin+duration), skipping excludeID (the item
// being moved or resized). Returns nil when the slot is free.
func (d *Day) FindConflict(startMin, durationMinutes int, excludeID string) *Item {
	candEnd := startMin + durationMinutes
	for _, it := range d.items {
		if excludeID != "" && it.ID == excludeID {
			continue
		}
		if startMin < it.EndMinutes() && candEnd > it.StartMinutes() {
			return it
		}
	}
	return nil
}

// Conflicts reports whether the candidate interval intersects any item.
func (d *Day) Conflicts(startMin, durationMinutes int, excludeID string) bool {
	return d.FindConflict(startMin, durationMinutes, excludeID) != nil
}

func (d *Day) sort() {
	slices.SortStableFunc(d.items, func(a, b *Item) int {
		return a.StartMinutes() - b.StartMinutes()
	})
}
