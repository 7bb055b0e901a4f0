package schedule

import (
	"context"
	"time"
)

// Repository defines the storage interface for scheduled items. The store is
// authoritative; the scheduling core never caches writes and does not manage
// retries.
type Repository interface {
	// UpsertItem inserts or replaces an item keyed by its id.
	UpsertItem(ctx context.Context, item *Item) error

	// GetItem retrieves an item by id. Returns ErrItemNotFound if absent.
	GetItem(ctx context.Context, id string) (*Item, error)

	// RemoveItem deletes an item by id.
	RemoveItem(ctx context.Context, id string) error

	// ListItemsByDate returns all items on the given calendar day, ordered
	// by start time.
	ListItemsByDate(ctx context.Context, date time.Time) ([]*Item, error)

	// ListItemsByDateRange returns all items within [start, end] inclusive,
	// ordered by date then start time.
	ListItemsByDateRange(ctx context.Context, start, end time.Time) ([]*Item, error)

	// ListItemsByOwner returns all items belonging to a task group.
	ListItemsByOwner(ctx context.Context, ownerID string) ([]*Item, error)

	// SetItemCompleted flips an item's completion flag.
	SetItemCompleted(ctx context.Context, id string, completed bool) error

	// RemoveItemsByOwner deletes all items belonging to a task group and
	// returns how many were removed. Used for cascading assignment deletion.
	RemoveItemsByOwner(ctx context.Context, ownerID string) (int, error)
}
