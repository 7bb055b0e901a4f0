package planner

import "time"

// Event is a state-change notification emitted by the planner. Consumers
// receive events on the channel returned by Planner.Events. Emission is
// fire-and-forget and idempotent: consumers must tolerate redundant signals,
// and a slow consumer loses events rather than blocking a placement.
type Event interface {
	event()
}

// ScheduleResultEvent reports the terminal state of a placement attempt.
type ScheduleResultEvent struct {
	ItemID     string
	FinalStart string
	FinalEnd   string
	Status     Status
}

// ItemsChangedEvent signals that the items on a date changed and dependent
// views should recompute.
type ItemsChangedEvent struct {
	Date time.Time
}

// ConflictEvent reports a placement that could not be resolved within the
// day window and was kept at its requested start.
type ConflictEvent struct {
	ItemID   string
	Date     time.Time
	Start    string
	Duration int
}

// CompletionToggledEvent carries the tuple the external task-group sync
// consumer mirrors; that consumer is responsible for not looping the update
// back.
type CompletionToggledEvent struct {
	ItemID    string
	OwnerID   string
	Completed bool
}

func (ScheduleResultEvent) event() {}
func (ItemsChangedEvent) event() {}
func (ConflictEvent) event() {}
func (CompletionToggledEvent) event() {}
