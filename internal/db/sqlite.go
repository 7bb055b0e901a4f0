// Package db provides SQLite storage for scheduled items and assignments.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/kasunala/studyflow/internal/assignment"
	"github.com/kasunala/studyflow/internal/schedule"
)

// SQLite implements schedule.Repository and assignment.Repository.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

const itemColumns = `id, title, owner_id, scheduled_date, start_time, duration_minutes, completed, blocked, created_at`

// UpsertItem inserts or replaces an item keyed by its id. End times are
// never stored: duration is the single source of truth.
func (s *SQLite) UpsertItem(ctx context.Context, it *schedule.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			owner_id = excluded.owner_id,
			scheduled_date = excluded.scheduled_date,
			start_time = excluded.start_time,
			duration_minutes = excluded.duration_minutes,
			completed = excluded.completed,
			blocked = excluded.blocked
	`

	_, err := s.db.ExecContext(ctx, query,
		it.ID,
		it.Title,
		it.OwnerID,
		it.Date.Format("2006-01-02"),
		it.StartTime,
		it.DurationMinutes,
		boolToInt(it.Completed),
		boolToInt(it.Blocked),
		it.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting item: %w", err)
	}
	return nil
}

// GetItem retrieves an item by id.
func (s *SQLite) GetItem(ctx context.Context, id string) (*schedule.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`

	it, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, schedule.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying item: %w", err)
	}
	return it, nil
}

// RemoveItem deletes an item by id.
func (s *SQLite) RemoveItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("removing item: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return schedule.ErrItemNotFound
	}
	return nil
}

// ListItemsByDate returns all items on the given calendar day, ordered by
// start time.
func (s *SQLite) ListItemsByDate(ctx context.Context, date time.Time) ([]*schedule.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE scheduled_date = ?
		ORDER BY start_time
	`
	return s.queryItems(ctx, query, date.Format("2006-01-02"))
}

// ListItemsByDateRange returns all items within [start, end] inclusive.
func (s *SQLite) ListItemsByDateRange(ctx context.Context, start, end time.Time) ([]*schedule.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE scheduled_date >= ? AND scheduled_date <= ?
		ORDER BY scheduled_date, start_time
	`
	return s.queryItems(ctx, query, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// ListItemsByOwner returns all items belonging to a task group.
func (s *SQLite) ListItemsByOwner(ctx context.Context, ownerID string) ([]*schedule.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE owner_id = ?
		ORDER BY scheduled_date, start_time
	`
	return s.queryItems(ctx, query, ownerID)
}

// SetItemCompleted flips an item's completion flag.
func (s *SQLite) SetItemCompleted(ctx context.Context, id string, completed bool) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE items SET completed = ? WHERE id = ?`, boolToInt(completed), id)
	if err != nil {
		return fmt.Errorf("updating completion: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return schedule.ErrItemNotFound
	}
	return nil
}

// RemoveItemsByOwner deletes all items belonging to a task group.
func (s *SQLite) RemoveItemsByOwner(ctx context.Context, ownerID string) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE owner_id = ?`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("removing items by owner: %w", err)
	}
	rows, _ := result.RowsAffected()
	return int(rows), nil
}

func (s *SQLite) queryItems(ctx context.Context, query string, args ...any) ([]*schedule.Item, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []*schedule.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (*schedule.Item, error) {
	var (
		it            schedule.Item
		scheduledDate string
		createdAt     string
		completed     int
		blocked       int
	)

	err := row.Scan(
		&it.ID,
		&it.Title,
		&it.OwnerID,
		&scheduledDate,
		&it.StartTime,
		&it.DurationMinutes,
		&completed,
		&blocked,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	it.Date, err = parseDate(scheduledDate)
	if err != nil {
		return nil, fmt.Errorf("parsing scheduled date: %w", err)
	}
	it.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	it.Completed = completed != 0
	it.Blocked = blocked != 0

	return &it, nil
}

// CreateAssignment adds a new assignment.
func (s *SQLite) CreateAssignment(ctx context.Context, a *assignment.Assignment) error {
	var due any
	if a.DueDate != nil {
		due = a.DueDate.Format("2006-01-02")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO assignments (id, title, subject, due_date, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, a.ID, a.Title, a.Subject, due, a.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting assignment: %w", err)
	}
	return nil
}

// GetAssignment retrieves an assignment by id.
func (s *SQLite) GetAssignment(ctx context.Context, id string) (*assignment.Assignment, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, subject, due_date, created_at
		FROM assignments
		WHERE id = ?
	`, id)

	a, err := scanAssignment(row)
	if err == sql.ErrNoRows {
		return nil, assignment.ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying assignment: %w", err)
	}
	return a, nil
}

// ListAssignments returns all assignments ordered by creation time.
func (s *SQLite) ListAssignments(ctx context.Context) ([]*assignment.Assignment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, subject, due_date, created_at
		FROM assignments
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("querying assignments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*assignment.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignments: %w", err)
	}
	return out, nil
}

// RemoveAssignment deletes an assignment by id.
func (s *SQLite) RemoveAssignment(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("removing assignment: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return assignment.ErrAssignmentNotFound
	}
	return nil
}

func scanAssignment(row scanner) (*assignment.Assignment, error) {
	var (
		a         assignment.Assignment
		due       sql.NullString
		createdAt string
	)

	if err := row.Scan(&a.ID, &a.Title, &a.Subject, &due, &createdAt); err != nil {
		return nil, err
	}

	if due.Valid {
		d, err := parseDate(due.String)
		if err != nil {
			return nil, fmt.Errorf("parsing due date: %w", err)
		}
		a.DueDate = &d
	}

	var err error
	a.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	return &a, nil
}

// parseDate parses a date string in the formats SQLite might return.
// Date-only values are parsed as local midnight so they compare cleanly
// against time.Now() based dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	// SQLite can return DATE columns as "2006-01-02T00:00:00Z".
	if len(s) >= 10 {
		if t, err := time.ParseInLocation("2006-01-02", s[:10], time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}

func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", s)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
