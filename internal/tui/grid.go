package tui

import (
	"github.com/kasunala/studyflow/internal/schedule"
)

// dayGrid projects one day's items onto the visible window, one cell per
// slot. Items spanning multiple slots have their pointer in every slot they
// occupy, so cursor lookups and span highlighting are O(1) per cell.
type dayGrid struct {
	window schedule.Window
	slots  []*schedule.Item
}

func newDayGrid(items []*schedule.Item, w schedule.Window) *dayGrid {
	g := &dayGrid{
		window: w,
		slots:  make([]*schedule.Item, (w.EndMinutes-w.StartMinutes)/w.SlotMinutes),
	}
	for _, it := range items {
		g.place(it)
	}
	return g
}

// place marks every window slot the item touches. Items entirely outside
// the window are dropped from the grid; partial overlap is clamped.
func (g *dayGrid) place(it *schedule.Item) {
	if it == nil {
		return
	}
	start := g.minutesToSlot(it.StartMinutes())
	end := g.minutesToSlotCeil(it.EndMinutes())
	if end <= 0 || start >= len(g.slots) {
		return
	}
	if start < 0 {
		start = 0
	}
	if end > len(g.slots) {
		end = len(g.slots)
	}
	for s := start; s < end; s++ {
		g.slots[s] = it
	}
}

func (g *dayGrid) numSlots() int {
	return len(g.slots)
}

// itemAt returns the item occupying the slot, or nil for a free slot.
func (g *dayGrid) itemAt(slot int) *schedule.Item {
	if slot < 0 || slot >= len(g.slots) {
		return nil
	}
	return g.slots[slot]
}

// isStart reports whether the slot is the first visible slot of its item.
func (g *dayGrid) isStart(slot int) bool {
	it := g.itemAt(slot)
	if it == nil {
		return false
	}
	return slot == 0 || g.itemAt(slot-1) != it
}

// slotTime returns the "HH:MM" label of the slot.
func (g *dayGrid) slotTime(slot int) string {
	return schedule.MinutesToTime(g.window.StartMinutes + slot*g.window.SlotMinutes)
}

// slotMinutes returns the slot start in minutes from midnight.
func (g *dayGrid) slotMinutes(slot int) int {
	return g.window.StartMinutes + slot*g.window.SlotMinutes
}

func (g *dayGrid) minutesToSlot(min int) int {
	return (min - g.window.StartMinutes) / g.window.SlotMinutes
}

func (g *dayGrid) minutesToSlotCeil(min int) int {
	return (min - g.window.StartMinutes + g.window.SlotMinutes - 1) / g.window.SlotMinutes
}

// firstItemSlot returns the start slot of the first item at or after the
// given slot, or -1 when the rest of the day is free.
func (g *dayGrid) firstItemSlot(from int) int {
	if from < 0 {
		from = 0
	}
	for s := from; s < len(g.slots); s++ {
		if g.slots[s] != nil && g.isStart(s) {
			return s
		}
	}
	return -1
}
