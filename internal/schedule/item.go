package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validation errors.
var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrInvalidDuration   = errors.New("duration must be at least 15 minutes")
)

// Domain errors.
var (
	ErrItemNotFound = errors.New("scheduled item not found")
	ErrSlotConflict = errors.New("time slot conflicts with existing item")
)

// BlockedOwnerID is the sentinel owner for blocked-time items, which belong
// to no assignment.
const BlockedOwnerID = "blocked-time"

// MinDuration is the smallest schedulable duration in minutes.
const MinDuration = 15

// Item is the unit placed on the calendar: a task from an assignment or a
// self-reserved blocked-time window. Its end time is always derived from
// start plus duration and never stored.
type Item struct {
	ID              string
	Title           string
	OwnerID         string // assignment id, or BlockedOwnerID
	Date            time.Time
	StartTime       string // "HH:MM"
	DurationMinutes int
	Completed       bool
	Blocked         bool
	CreatedAt       time.Time
}

// NewItem creates a validated calendar item for an assignment task.
func NewItem(title, ownerID string, date time.Time, start string, durationMinutes int) (*Item, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !ValidTime(start) {
		return nil, ErrInvalidTimeFormat
	}
	if durationMinutes < MinDuration {
		return nil, ErrInvalidDuration
	}
	return &Item{
		ID:              uuid.NewString(),
		Title:           title,
		OwnerID:         ownerID,
		Date:            truncateToDay(date),
		StartTime:       start,
		DurationMinutes: durationMinutes,
		CreatedAt:       time.Now(),
	}, nil
}

// NewBlockedItem creates a validated blocked-time item.
func NewBlockedItem(title string, date time.Time, start string, durationMinutes int) (*Item, error) {
	it, err := NewItem(title, BlockedOwnerID, date, start, durationMinutes)
	if err != nil {
		return nil, err
	}
	it.Blocked = true
	return it, nil
}

// StartMinutes returns the start as minutes since midnight.
func (it *Item) StartMinutes() int {
	return TimeToMinutes(it.StartTime)
}

// EndMinutes returns start plus duration without wrapping, so an item
// crossing midnight keeps end > start for interval arithmetic.
func (it *Item) EndMinutes() int {
	return it.StartMinutes() + it.DurationMinutes
}

// EndTime returns the derived wall-clock end time, wrapped for display.
func (it *Item) EndTime() string {
	return CalculateEndTime(it.StartTime, it.DurationMinutes)
}

// SameDate reports whether the item falls on the given calendar day.
func (it *Item) SameDate(date time.Time) bool {
	d := truncateToDay(date)
	return it.Date.Year() == d.Year() && it.Date.Month() == d.Month() && it.Date.Day() == d.Day()
}

// truncateToDay removes the time component from a time.Time.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
