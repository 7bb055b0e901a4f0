package importer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kasunala/studyflow/internal/assignment"
	"github.com/kasunala/studyflow/internal/db"
	"github.com/kasunala/studyflow/internal/planner"
	"github.com/kasunala/studyflow/internal/schedule"
)

func newTestDeps(t *testing.T) (*assignment.Service, *planner.Planner, *db.SQLite) {
	t.Helper()
	repo, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("creating test db: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	return assignment.NewService(repo, repo), planner.New(repo, schedule.DefaultWindow()), repo
}

const validYAML = `
assignment:
  title: History essay
  subject: history
  due_date: "2024-02-01"
tasks:
  - title: Research sources
    date: "2024-01-15"
    start: "09:00"
    duration: 60
  - title: Write outline
    date: "2024-01-15"
    start: "11:00"
    duration: 45
`

func TestImport(t *testing.T) {
	svc, pl, repo := newTestDeps(t)
	ctx := context.Background()

	res, err := Import(ctx, svc, pl, []byte(validYAML))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.Placed != 2 || res.Rescheduled != 0 {
		t.Errorf("Placed = %d, Rescheduled = %d; want 2, 0", res.Placed, res.Rescheduled)
	}
	if res.Assignment.Subject != "history" {
		t.Errorf("Subject = %q, want history", res.Assignment.Subject)
	}

	items, err := repo.ListItemsByOwner(ctx, res.Assignment.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Errorf("stored %d items, want 2", len(items))
	}
}

func TestImportReschedulesConflicts(t *testing.T) {
	svc, pl, _ := newTestDeps(t)
	ctx := context.Background()

	conflicting := `
assignment:
  title: Overlap test
tasks:
  - title: First
    date: "2024-01-15"
    start: "09:00"
    duration: 60
  - title: Second
    date: "2024-01-15"
    start: "09:00"
    duration: 60
`
	res, err := Import(ctx, svc, pl, []byte(conflicting))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.Placed != 2 {
		t.Errorf("Placed = %d, want 2", res.Placed)
	}
	if res.Rescheduled != 1 {
		t.Errorf("Rescheduled = %d, want 1", res.Rescheduled)
	}
}

func TestImportErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "not yaml", yaml: `{{nope`},
		{name: "missing assignment title", yaml: "tasks:\n  - title: T\n    date: \"2024-01-15\"\n    start: \"09:00\"\n    duration: 30\n"},
		{name: "no tasks", yaml: "assignment:\n  title: Empty\n"},
		{name: "bad task date", yaml: "assignment:\n  title: A\ntasks:\n  - title: T\n    date: next week\n    start: \"09:00\"\n    duration: 30\n"},
		{name: "bad task time", yaml: "assignment:\n  title: A\ntasks:\n  - title: T\n    date: \"2024-01-15\"\n    start: \"9am\"\n    duration: 30\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, pl, _ := newTestDeps(t)
			if _, err := Import(context.Background(), svc, pl, []byte(tt.yaml)); err == nil {
				t.Error("Import() = nil error, want failure")
			}
		})
	}
}
