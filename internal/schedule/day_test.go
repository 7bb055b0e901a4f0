package schedule

import (
	"testing"
	"time"
)

var testDate = time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)

func mustItem(t *testing.T, title, start string, duration int) *Item {
	t.Helper()
	it, err := NewItem(title, "assignment-1", testDate, start, duration)
	if err != nil {
		t.Fatalf("NewItem(%q, %q, %d): %v", title, start, duration, err)
	}
	return it
}

func mustBlocked(t *testing.T, title, start string, duration int) *Item {
	t.Helper()
	it, err := NewBlockedItem(title, testDate, start, duration)
	if err != nil {
		t.Fatalf("NewBlockedItem(%q, %q, %d): %v", title, start, duration, err)
	}
	return it
}

func TestDayConflicts(t *testing.T) {
	existing := mustItem(t, "Essay draft", "09:00", 30)
	day := NewDayWithItems(testDate, []*Item{existing})

	tests := []struct {
		name     string
		start    string
		duration int
		want     bool
	}{
		{name: "touching end boundary is free", start: "09:30", duration: 30, want: false},
		{name: "touching start boundary is free", start: "08:30", duration: 30, want: false},
		{name: "starts inside", start: "09:15", duration: 30, want: true},
		{name: "ends inside", start: "08:45", duration: 30, want: true},
		{name: "fully contains", start: "08:45", duration: 60, want: true},
		{name: "fully contained", start: "09:10", duration: 10, want: true},
		{name: "identical interval", start: "09:00", duration: 30, want: true},
		{name: "well before", start: "07:00", duration: 60, want: false},
		{name: "well after", start: "11:00", duration: 60, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := day.Conflicts(TimeToMinutes(tt.start), tt.duration, "")
			if got != tt.want {
				t.Errorf("Conflicts(%s, %d) = %v, want %v", tt.start, tt.duration, got, tt.want)
			}
		})
	}
}

func TestDayConflictsContainment(t *testing.T) {
	// A 60-minute item must conflict with a 15-minute candidate inside it.
	day := NewDayWithItems(testDate, []*Item{mustItem(t, "Lecture review", "09:00", 60)})
	if !day.Conflicts(TimeToMinutes("09:15"), 15, "") {
		t.Error("contained candidate not reported as conflict")
	}
}

func TestDayConflictsExcludeID(t *testing.T) {
	moving := mustItem(t, "Reading", "10:00", 60)
	other := mustItem(t, "Problem set", "12:00", 60)
	day := NewDayWithItems(testDate, []*Item{moving, other})

	// Resizing an item must not conflict with itself.
	if day.Conflicts(TimeToMinutes("10:00"), 90, moving.ID) {
		t.Error("item conflicts with itself when excluded")
	}
	// But it still conflicts with others.
	if !day.Conflicts(TimeToMinutes("11:30"), 60, moving.ID) {
		t.Error("conflict with other item missed when excluding self")
	}
}

func TestDayStrictPolicyAppliesToBlockedAndPlain(t *testing.T) {
	day := NewDayWithItems(testDate, []*Item{mustBlocked(t, "Gym", "17:00", 60)})

	// Strict policy: a plain task conflicts with blocked time...
	if !day.Conflicts(TimeToMinutes("17:30"), 30, "") {
		t.Error("task overlapping blocked time not reported")
	}

	// ...and two plain tasks conflict with each other.
	day = NewDayWithItems(testDate, []*Item{mustItem(t, "Essay", "09:00", 60)})
	if !day.Conflicts(TimeToMinutes("09:30"), 30, "") {
		t.Error("two plain tasks overlapping not reported")
	}
}

func TestDayCrossMidnightConflict(t *testing.T) {
	// 23:30 + 60min reaches 00:30 next day in unwrapped minutes (1470).
	late := mustItem(t, "Late session", "23:30", 60)
	day := NewDayWithItems(testDate, []*Item{late})

	if !day.Conflicts(TimeToMinutes("23:45"), 30, "") {
		t.Error("candidate inside cross-midnight item not reported")
	}
	if day.Conflicts(TimeToMinutes("22:30"), 60, "") {
		t.Error("candidate ending at item start reported as conflict")
	}
}

func TestNewDayWithItemsFiltersAndSorts(t *testing.T) {
	otherDay, err := NewItem("Elsewhere", "assignment-1", testDate.AddDate(0, 0, 1), "09:00", 30)
	if err != nil {
		t.Fatal(err)
	}
	second := mustItem(t, "Second", "11:00", 30)
	first := mustItem(t, "First", "09:00", 30)

	day := NewDayWithItems(testDate, []*Item{second, otherDay, first, nil})

	if day.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", day.Len())
	}
	items := day.Items()
	if items[0].Title != "First" || items[1].Title != "Second" {
		t.Errorf("items not sorted by start: got %q, %q", items[0].Title, items[1].Title)
	}
}

func TestDayRemove(t *testing.T) {
	it := mustItem(t, "Essay", "09:00", 30)
	day := NewDayWithItems(testDate, []*Item{it})

	if got := day.Remove(it.ID); got == nil || got.ID != it.ID {
		t.Fatalf("Remove(%q) = %v, want the item", it.ID, got)
	}
	if day.Len() != 0 {
		t.Errorf("Len() after remove = %d, want 0", day.Len())
	}
	if got := day.Remove("missing"); got != nil {
		t.Errorf("Remove(missing) = %v, want nil", got)
	}
}
