package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestNewItemValidation(t *testing.T) {
	d := time.Date(2024, 1, 15, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name     string
		title    string
		start    string
		duration int
		wantErr  error
	}{
		{name: "valid", title: "Essay", start: "09:00", duration: 60},
		{name: "empty title", title: "", start: "09:00", duration: 60, wantErr: ErrEmptyTitle},
		{name: "bad time", title: "Essay", start: "9am", duration: 60, wantErr: ErrInvalidTimeFormat},
		{name: "out of range time", title: "Essay", start: "25:00", duration: 60, wantErr: ErrInvalidTimeFormat},
		{name: "duration too small", title: "Essay", start: "09:00", duration: 10, wantErr: ErrInvalidDuration},
		{name: "zero duration", title: "Essay", start: "09:00", duration: 0, wantErr: ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := NewItem(tt.title, "assignment-1", d, tt.start, tt.duration)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewItem() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewItem() unexpected error: %v", err)
			}
			if it.ID == "" {
				t.Error("NewItem() produced empty id")
			}
			if h, m, s := it.Date.Clock(); h != 0 || m != 0 || s != 0 {
				t.Errorf("Date not truncated to midnight: %v", it.Date)
			}
		})
	}
}

func TestNewItemDistinctIDs(t *testing.T) {
	d := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	a, _ := NewItem("Essay", "assignment-1", d, "09:00", 30)
	b, _ := NewItem("Essay", "assignment-1", d, "09:00", 30)
	if a.ID == b.ID {
		t.Errorf("two items share id %q", a.ID)
	}
}

func TestNewBlockedItem(t *testing.T) {
	d := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	it, err := NewBlockedItem("Gym", d, "17:00", 60)
	if err != nil {
		t.Fatalf("NewBlockedItem(): %v", err)
	}
	if !it.Blocked {
		t.Error("Blocked = false, want true")
	}
	if it.OwnerID != BlockedOwnerID {
		t.Errorf("OwnerID = %q, want %q", it.OwnerID, BlockedOwnerID)
	}
}

func TestItemEndDerivation(t *testing.T) {
	d := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name        string
		start       string
		duration    int
		wantEndMin  int
		wantEndTime string
	}{
		{name: "plain", start: "09:00", duration: 90, wantEndMin: 630, wantEndTime: "10:30"},
		{name: "cross midnight keeps raw minutes", start: "23:30", duration: 60, wantEndMin: 1470, wantEndTime: "00:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := NewItem("Essay", "assignment-1", d, tt.start, tt.duration)
			if err != nil {
				t.Fatal(err)
			}
			if got := it.EndMinutes(); got != tt.wantEndMin {
				t.Errorf("EndMinutes() = %d, want %d", got, tt.wantEndMin)
			}
			if got := it.EndTime(); got != tt.wantEndTime {
				t.Errorf("EndTime() = %q, want %q", got, tt.wantEndTime)
			}
		})
	}
}

func TestItemSameDate(t *testing.T) {
	d := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	it, _ := NewItem("Essay", "assignment-1", d, "09:00", 30)

	if !it.SameDate(time.Date(2024, 1, 15, 18, 45, 0, 0, time.Local)) {
		t.Error("SameDate() = false for same calendar day with time component")
	}
	if it.SameDate(d.AddDate(0, 0, 1)) {
		t.Error("SameDate() = true for next day")
	}
}
