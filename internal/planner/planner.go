// Package planner orchestrates calendar placements: it runs the overlap
// check against the day's items, relocates conflicting placements through
// the slot search, persists the resolved interval and notifies consumers.
package planner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kasunala/studyflow/internal/schedule"
)

// Request validation errors.
var (
	ErrMissingDate  = errors.New("date is required")
	ErrMissingTitle = errors.New("title is required")
	ErrMissingOwner = errors.New("owner is required")

	// ErrBlockedCompletion rejects completion toggles on blocked time:
	// reserved windows are not work to finish.
	ErrBlockedCompletion = errors.New("blocked time cannot be completed")
)

// Status is the terminal state of a placement attempt.
type Status string

const (
	// StatusPlaced means the item was written at the requested start.
	StatusPlaced Status = "placed"
	// StatusRescheduled means a conflict was resolved to an alternative slot.
	StatusRescheduled Status = "rescheduled"
	// StatusRejected means the request was malformed; nothing was written.
	StatusRejected Status = "rejected"
)

// Request describes a placement attempt: a new drop onto the calendar when
// ItemID is empty, otherwise a move or resize of an existing item.
type Request struct {
	ItemID   string
	Title    string
	OwnerID  string
	Date     time.Time
	Start    string // "HH:MM"
	Duration int    // minutes
	Blocked  bool
}

// Result is the outcome of Place.
type Result struct {
	Item   *schedule.Item
	Status Status
	// Unresolved is set when no alternative slot existed and the item was
	// kept at the requested start despite the conflict.
	Unresolved bool
}

// BlockedRequest describes a possibly recurring blocked-time window.
type BlockedRequest struct {
	Title     string
	StartDate time.Time
	EndDate   time.Time
	Start     string
	Duration  int
	Pattern   schedule.Pattern
	Weekdays  schedule.WeekdaySet
}

// BlockedResult reports a recurrence fan-out: which occurrences were placed
// and how many were skipped because their date already had a conflicting
// item.
type BlockedResult struct {
	Placed  []*schedule.Item
	Skipped int
}

const eventBuffer = 64

// Planner resolves placement requests against a repository snapshot.
type Planner struct {
	repo   schedule.Repository
	window schedule.Window
	events chan Event
}

// New creates a Planner over the given repository and day window.
func New(repo schedule.Repository, window schedule.Window) *Planner {
	return &Planner{
		repo:   repo,
		window: window,
		events: make(chan Event, eventBuffer),
	}
}

// Events returns the notification channel. Events are dropped, not queued
// indefinitely, when no consumer keeps up.
func (p *Planner) Events() <-chan Event {
	return p.events
}

// Place runs a placement attempt to a terminal state: validate, check the
// date's items for conflicts, relocate via slot search when needed, persist,
// notify. The in-memory view is never updated before the store write
// confirms, so a failed write leaves nothing to roll back.
func (p *Planner) Place(ctx context.Context, req Request) (*Result, error) {
	item, err := p.resolveItem(ctx, req)
	if err != nil {
		return &Result{Status: StatusRejected}, err
	}

	items, err := p.repo.ListItemsByDate(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("loading items for %s: %w", req.Date.Format("2006-01-02"), err)
	}
	day := schedule.NewDayWithItems(req.Date, items)

	start := req.Start
	status := StatusPlaced
	unresolved := false

	if day.Conflicts(schedule.TimeToMinutes(start), req.Duration, item.ID) {
		found := schedule.FindSlot(start, req.Duration, day, item.ID, p.window)
		if found == start {
			// Fail-open: the whole window is packed. Keep the requested
			// start and surface the conflict instead of dropping the
			// request.
			unresolved = true
		} else {
			start = found
			status = StatusRescheduled
		}
	}

	item.Date = req.Date
	item.StartTime = start
	item.DurationMinutes = req.Duration

	if err := p.repo.UpsertItem(ctx, item); err != nil {
		return nil, fmt.Errorf("persisting item %s: %w", item.ID, err)
	}

	if unresolved {
		p.emit(ConflictEvent{ItemID: item.ID, Date: item.Date, Start: start, Duration: req.Duration})
	}
	p.emit(ScheduleResultEvent{
		ItemID:     item.ID,
		FinalStart: item.StartTime,
		FinalEnd:   item.EndTime(),
		Status:     status,
	})
	p.emit(ItemsChangedEvent{Date: item.Date})

	return &Result{Item: item, Status: status, Unresolved: unresolved}, nil
}

// resolveItem validates the request and returns the item to write: a fresh
// one for a create, the stored one for a move or resize.
func (p *Planner) resolveItem(ctx context.Context, req Request) (*schedule.Item, error) {
	if req.Date.IsZero() {
		return nil, ErrMissingDate
	}
	if !schedule.ValidTime(req.Start) {
		return nil, schedule.ErrInvalidTimeFormat
	}
	if req.Duration < schedule.MinDuration {
		return nil, schedule.ErrInvalidDuration
	}

	if req.ItemID != "" {
		item, err := p.repo.GetItem(ctx, req.ItemID)
		if err != nil {
			return nil, err
		}
		return item, nil
	}

	if req.Title == "" {
		return nil, ErrMissingTitle
	}
	if req.Blocked {
		return schedule.NewBlockedItem(req.Title, req.Date, req.Start, req.Duration)
	}
	if req.OwnerID == "" {
		return nil, ErrMissingOwner
	}
	return schedule.NewItem(req.Title, req.OwnerID, req.Date, req.Start, req.Duration)
}

// PlaceBlocked expands a recurrence pattern and places one independent
// blocked-time item per occurrence date. Occurrences whose date already has
// a conflicting item are skipped individually; the batch never aborts on a
// single conflict. Store writes for the surviving occurrences are issued
// concurrently and awaited collectively.
func (p *Planner) PlaceBlocked(ctx context.Context, req BlockedRequest) (*BlockedResult, error) {
	if req.Title == "" {
		return nil, ErrMissingTitle
	}
	if req.StartDate.IsZero() {
		return nil, ErrMissingDate
	}
	if !schedule.ValidTime(req.Start) {
		return nil, schedule.ErrInvalidTimeFormat
	}
	if req.Duration < schedule.MinDuration {
		return nil, schedule.ErrInvalidDuration
	}

	dates := schedule.ExpandRecurrence(req.StartDate, req.EndDate, req.Pattern, req.Weekdays)

	result := &BlockedResult{}
	for _, d := range dates {
		items, err := p.repo.ListItemsByDate(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("loading items for %s: %w", d.Format("2006-01-02"), err)
		}
		day := schedule.NewDayWithItems(d, items)
		if day.Conflicts(schedule.TimeToMinutes(req.Start), req.Duration, "") {
			result.Skipped++
			continue
		}

		title := req.Title
		if len(dates) > 1 {
			title = fmt.Sprintf("%s (%s)", req.Title, d.Weekday().String()[:3])
		}
		item, err := schedule.NewBlockedItem(title, d, req.Start, req.Duration)
		if err != nil {
			return nil, err
		}
		result.Placed = append(result.Placed, item)
	}

	// Occurrence writes are independent, so fan them out and await the
	// collective completion before reporting counts.
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, item := range result.Placed {
		wg.Add(1)
		go func(it *schedule.Item) {
			defer wg.Done()
			if err := p.repo.UpsertItem(ctx, it); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("persisting occurrence %s: %w", it.Date.Format("2006-01-02"), err))
				mu.Unlock()
			}
		}(item)
	}
	wg.Wait()

	if len(errs) > 0 {
		return result, errors.Join(errs...)
	}

	if len(result.Placed) > 0 {
		p.emit(ItemsChangedEvent{Date: req.StartDate})
	}
	return result, nil
}

// ToggleComplete flips an item's completion flag and emits the sync tuple
// for the owning task group.
func (p *Planner) ToggleComplete(ctx context.Context, id string) (*schedule.Item, error) {
	item, err := p.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Blocked {
		return nil, ErrBlockedCompletion
	}

	completed := !item.Completed
	if err := p.repo.SetItemCompleted(ctx, id, completed); err != nil {
		return nil, fmt.Errorf("updating completion for %s: %w", id, err)
	}
	item.Completed = completed

	p.emit(CompletionToggledEvent{ItemID: item.ID, OwnerID: item.OwnerID, Completed: completed})
	p.emit(ItemsChangedEvent{Date: item.Date})
	return item, nil
}

// Remove deletes an item and notifies consumers.
func (p *Planner) Remove(ctx context.Context, id string) error {
	item, err := p.repo.GetItem(ctx, id)
	if err != nil {
		return err
	}
	if err := p.repo.RemoveItem(ctx, id); err != nil {
		return fmt.Errorf("removing item %s: %w", id, err)
	}
	p.emit(ItemsChangedEvent{Date: item.Date})
	return nil
}

// emit delivers an event without blocking; a full buffer drops the event.
func (p *Planner) emit(ev Event) {
	select {
	case p.events <- ev:
	default:
	}
}
