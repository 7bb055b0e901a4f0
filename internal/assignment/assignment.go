// Package assignment defines task groups: the assignments that own the
// tasks a user drags onto the calendar.
package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kasunala/studyflow/internal/schedule"
)

var (
	ErrEmptyTitle         = errors.New("assignment title cannot be empty")
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// Assignment is a group of tasks with a shared deadline.
type Assignment struct {
	ID        string
	Title     string
	Subject   string
	DueDate   *time.Time // nil when no deadline is set
	CreatedAt time.Time
}

// New creates a validated assignment.
func New(title, subject string, dueDate *time.Time) (*Assignment, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Assignment{
		ID:        uuid.NewString(),
		Title:     title,
		Subject:   subject,
		DueDate:   dueDate,
		CreatedAt: time.Now(),
	}, nil
}

// Repository defines the storage interface for assignments.
type Repository interface {
	CreateAssignment(ctx context.Context, a *Assignment) error
	GetAssignment(ctx context.Context, id string) (*Assignment, error)
	ListAssignments(ctx context.Context) ([]*Assignment, error)
	RemoveAssignment(ctx context.Context, id string) error
}

// Progress summarizes how much of an assignment's scheduled work is done.
type Progress struct {
	Total     int
	Completed int
}

// Percent returns completion as a whole percentage, 0 for an empty group.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return (p.Completed * 100) / p.Total
}

// ProgressOf derives progress from an assignment's calendar items.
func ProgressOf(items []*schedule.Item) Progress {
	var p Progress
	for _, it := range items {
		p.Total++
		if it.Completed {
			p.Completed++
		}
	}
	return p
}

// Service coordinates assignments with their scheduled items.
type Service struct {
	assignments Repository
	items       schedule.Repository
}

// NewService creates a Service over the two stores.
func NewService(assignments Repository, items schedule.Repository) *Service {
	return &Service{assignments: assignments, items: items}
}

// Create adds a new assignment.
func (s *Service) Create(ctx context.Context, title, subject string, dueDate *time.Time) (*Assignment, error) {
	a, err := New(title, subject, dueDate)
	if err != nil {
		return nil, err
	}
	if err := s.assignments.CreateAssignment(ctx, a); err != nil {
		return nil, fmt.Errorf("creating assignment: %w", err)
	}
	return a, nil
}

// List returns all assignments.
func (s *Service) List(ctx context.Context) ([]*Assignment, error) {
	return s.assignments.ListAssignments(ctx)
}

// Progress returns the completion state of one assignment's items.
func (s *Service) Progress(ctx context.Context, id string) (Progress, error) {
	if _, err := s.assignments.GetAssignment(ctx, id); err != nil {
		return Progress{}, err
	}
	items, err := s.items.ListItemsByOwner(ctx, id)
	if err != nil {
		return Progress{}, fmt.Errorf("loading items for assignment %s: %w", id, err)
	}
	return ProgressOf(items), nil
}

// Delete removes an assignment and cascades removal of its scheduled items.
// Returns how many items were removed.
func (s *Service) Delete(ctx context.Context, id string) (int, error) {
	if _, err := s.assignments.GetAssignment(ctx, id); err != nil {
		return 0, err
	}
	removed, err := s.items.RemoveItemsByOwner(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("removing items for assignment %s: %w", id, err)
	}
	if err := s.assignments.RemoveAssignment(ctx, id); err != nil {
		return removed, fmt.Errorf("removing assignment %s: %w", id, err)
	}
	return removed, nil
}
