package ui

import (
	"testing"
	"time"

	"github.com/kasunala/studyflow/internal/schedule"
)

func testItem(t *testing.T, title string, completed, blocked bool) *schedule.Item {
	t.Helper()
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	var (
		it  *schedule.Item
		err error
	)
	if blocked {
		it, err = schedule.NewBlockedItem(title, date, "09:00", 60)
	} else {
		it, err = schedule.NewItem(title, "a1", date, "09:00", 60)
	}
	if err != nil {
		t.Fatalf("building item %q: %v", title, err)
	}
	it.Completed = completed
	return it
}

func TestAgendaLine(t *testing.T) {
	DisableColor()

	tests := []struct {
		name      string
		title     string
		completed bool
		blocked   bool
		width     int
		want      string
	}{
		{
			name:  "open task",
			title: "Essay",
			width: 80,
			want:  "09:00-10:00 [ ] Essay",
		},
		{
			name:      "completed task",
			title:     "Essay",
			completed: true,
			width:     80,
			want:      "09:00-10:00 [x] Essay",
		},
		{
			name:    "blocked time",
			title:   "Lunch",
			blocked: true,
			width:   80,
			want:    "09:00-10:00 [ ] Lunch",
		},
		{
			name:  "long title truncated to width",
			title: "a very long assignment title",
			width: 32,
			want:  "09:00-10:00 [ ] a very lo…",
		},
		{
			name:  "narrow terminal keeps title",
			title: "a very long assignment title",
			width: 20,
			want:  "09:00-10:00 [ ] a very long assignment title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := testItem(t, tt.title, tt.completed, tt.blocked)
			if got := agendaLine(it, tt.width); got != tt.want {
				t.Errorf("agendaLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlainAgenda(t *testing.T) {
	open := testItem(t, "Essay", false, false)
	done := testItem(t, "Reading", true, false)

	got := plainAgenda("Monday, January 15, 2024", []*schedule.Item{open, done})
	want := "Monday, January 15, 2024\n" +
		"09:00-10:00 [ ] Essay\n" +
		"09:00-10:00 [x] Reading\n"
	if got != want {
		t.Errorf("plainAgenda() = %q, want %q", got, want)
	}
}

func TestGapLine(t *testing.T) {
	DisableColor()

	if got, want := gapLine(540, 600), "09:00-10:00 60 min free"; got != want {
		t.Errorf("gapLine(540, 600) = %q, want %q", got, want)
	}
	if got, want := gapLine(1350, 1380), "22:30-23:00 30 min free"; got != want {
		t.Errorf("gapLine(1350, 1380) = %q, want %q", got, want)
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "entries"},
		{1, "entry"},
		{2, "entries"},
	}
	for _, tt := range tests {
		if got := plural(tt.n, "entry", "entries"); got != tt.want {
			t.Errorf("plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
