package tui

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kasunala/studyflow/internal/planner"
	"github.com/kasunala/studyflow/internal/schedule"
)

// fakeRepo is an in-memory schedule.Repository for driving the model.
type fakeRepo struct {
	items map[string]*schedule.Item
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]*schedule.Item)}
}

func (r *fakeRepo) UpsertItem(_ context.Context, item *schedule.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeRepo) GetItem(_ context.Context, id string) (*schedule.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, schedule.ErrItemNotFound
	}
	cp := *it
	return &cp, nil
}

func (r *fakeRepo) RemoveItem(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeRepo) ListItemsByDate(_ context.Context, date time.Time) ([]*schedule.Item, error) {
	var out []*schedule.Item
	for _, it := range r.items {
		if it.SameDate(date) {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartMinutes() < out[j].StartMinutes() })
	return out, nil
}

func (r *fakeRepo) ListItemsByDateRange(_ context.Context, start, end time.Time) ([]*schedule.Item, error) {
	var out []*schedule.Item
	for _, it := range r.items {
		if !it.Date.Before(start) && !it.Date.After(end) {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListItemsByOwner(_ context.Context, ownerID string) ([]*schedule.Item, error) {
	var out []*schedule.Item
	for _, it := range r.items {
		if it.OwnerID == ownerID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRepo) SetItemCompleted(_ context.Context, id string, completed bool) error {
	it, ok := r.items[id]
	if !ok {
		return schedule.ErrItemNotFound
	}
	it.Completed = completed
	return nil
}

func (r *fakeRepo) RemoveItemsByOwner(_ context.Context, ownerID string) (int, error) {
	n := 0
	for id, it := range r.items {
		if it.OwnerID == ownerID {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

var testDate = time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

// newTestModel builds a loaded model over the given items.
func newTestModel(t *testing.T, items ...*schedule.Item) (Model, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	for _, it := range items {
		if err := repo.UpsertItem(context.Background(), it); err != nil {
			t.Fatalf("UpsertItem: %v", err)
		}
	}

	m := NewModel(repo, planner.New(repo, testWindow()), testWindow())
	m.date = testDate
	m.loading = true
	return runCmd(t, m, loadItems(repo, testDate)), repo
}

// runCmd executes a command and feeds domain messages back into the model
// until it settles. Non-domain messages (blinks, ticks) are ignored.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		switch msg.(type) {
		case itemsLoadedMsg, placedMsg, toggledMsg, removedMsg:
			var mm tea.Model
			mm, cmd = m.Update(msg)
			m = mm.(Model)
		default:
			return m
		}
	}
	return m
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	mm, cmd := m.Update(msg)
	return mm.(Model), cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
)

func TestInitialLoadBuildsGrid(t *testing.T) {
	it := makeItem(t, "essay", "09:30", 30) // slots 2, 3
	m, _ := newTestModel(t, it)

	got := m.grid.itemAt(2)
	if got == nil || got.Title != "essay" {
		t.Fatalf("itemAt(2) = %v, want essay", got)
	}
	if m.grid.itemAt(0) != nil {
		t.Errorf("itemAt(0) should be free")
	}
}

func TestMoveShiftsAndDrops(t *testing.T) {
	it := makeItem(t, "essay", "09:00", 30)
	m, repo := newTestModel(t, it)

	m, _ = press(m, keyRune('m'))
	if m.mode != ModeMove {
		t.Fatalf("mode = %v, want ModeMove", m.mode)
	}
	m, _ = press(m, keyRune('j'))
	m, _ = press(m, keyRune('j'))
	if got := schedule.MinutesToTime(m.pendingMin); got != "09:30" {
		t.Fatalf("pendingMin = %s, want 09:30", got)
	}

	var cmd tea.Cmd
	m, cmd = press(m, keyEnter)
	m = runCmd(t, m, cmd)

	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal after drop", m.mode)
	}
	stored, err := repo.GetItem(context.Background(), it.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if stored.StartTime != "09:30" {
		t.Errorf("StartTime = %s, want 09:30", stored.StartTime)
	}
	if !strings.HasPrefix(m.status, "placed") {
		t.Errorf("status = %q, want placed", m.status)
	}
}

func TestMoveDropOnConflictReschedules(t *testing.T) {
	a := makeItem(t, "a", "09:00", 30)
	b := makeItem(t, "b", "09:30", 30)
	m, repo := newTestModel(t, a, b)

	// Pick up a and drop it exactly on b.
	m, _ = press(m, keyRune('m'))
	m, _ = press(m, keyRune('j'))
	m, _ = press(m, keyRune('j'))

	var cmd tea.Cmd
	m, cmd = press(m, keyEnter)
	m = runCmd(t, m, cmd)

	stored, err := repo.GetItem(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	// The earliest free gap is a's own vacated slot.
	if stored.StartTime != "09:00" {
		t.Errorf("StartTime = %s, want 09:00", stored.StartTime)
	}
	if !strings.HasPrefix(m.status, "slot busy") {
		t.Errorf("status = %q, want a reschedule notice", m.status)
	}
}

func TestMoveCancelRestoresDay(t *testing.T) {
	it := makeItem(t, "essay", "09:00", 30)
	m, _ := newTestModel(t, it)

	m, _ = press(m, keyRune('m'))
	var cmd tea.Cmd
	m, cmd = press(m, keyRune('l')) // next day while moving
	m = runCmd(t, m, cmd)
	if m.date.Equal(testDate) {
		t.Fatalf("date did not advance")
	}

	m, cmd = press(m, keyEsc)
	m = runCmd(t, m, cmd)

	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal", m.mode)
	}
	if !m.date.Equal(testDate) {
		t.Errorf("date = %s, want %s restored", m.date, testDate)
	}
	if m.grid.itemAt(0) == nil {
		t.Errorf("original day's items not reloaded")
	}
}

func TestMoveClampsToWindow(t *testing.T) {
	it := makeItem(t, "essay", "09:00", 30)
	m, _ := newTestModel(t, it)

	m, _ = press(m, keyRune('m'))
	m, _ = press(m, keyRune('k')) // already at window start
	if got := schedule.MinutesToTime(m.pendingMin); got != "09:00" {
		t.Errorf("pendingMin = %s, want clamped 09:00", got)
	}

	for i := 0; i < 50; i++ {
		m, _ = press(m, keyRune('j'))
	}
	// Window end is 12:00; the latest start leaving room for 30m is 11:30.
	if got := schedule.MinutesToTime(m.pendingMin); got != "11:30" {
		t.Errorf("pendingMin = %s, want clamped 11:30", got)
	}
}

func TestToggleCompleteFromGrid(t *testing.T) {
	it := makeItem(t, "essay", "09:00", 30)
	m, repo := newTestModel(t, it)

	var cmd tea.Cmd
	m, cmd = press(m, keyRune('x'))
	m = runCmd(t, m, cmd)

	stored, err := repo.GetItem(context.Background(), it.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if !stored.Completed {
		t.Errorf("item not completed")
	}
	if !strings.HasPrefix(m.status, "completed") {
		t.Errorf("status = %q, want completed notice", m.status)
	}
}

func TestBlockedItemCannotBeCompleted(t *testing.T) {
	it, err := schedule.NewBlockedItem("lunch", testDate, "09:00", 30)
	if err != nil {
		t.Fatalf("NewBlockedItem: %v", err)
	}
	m, repo := newTestModel(t, it)

	var cmd tea.Cmd
	m, cmd = press(m, keyRune('x'))
	if cmd != nil {
		t.Fatalf("toggle on blocked time should be a no-op")
	}
	stored, _ := repo.GetItem(context.Background(), it.ID)
	if stored.Completed {
		t.Errorf("blocked item was completed")
	}
	if m.status == "" {
		t.Errorf("expected a status notice")
	}
}

func TestAddBlockedTimeAtCursor(t *testing.T) {
	m, repo := newTestModel(t)

	m, _ = press(m, keyRune('b'))
	if m.mode != ModeAdd {
		t.Fatalf("mode = %v, want ModeAdd", m.mode)
	}
	for _, r := range "review notes" {
		m, _ = press(m, keyRune(r))
	}

	var cmd tea.Cmd
	m, cmd = press(m, keyEnter)
	m = runCmd(t, m, cmd)

	items, err := repo.ListItemsByDate(context.Background(), testDate)
	if err != nil {
		t.Fatalf("ListItemsByDate: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	got := items[0]
	if !got.Blocked {
		t.Errorf("item not blocked")
	}
	if got.Title != "review notes" {
		t.Errorf("Title = %q, want %q", got.Title, "review notes")
	}
	if got.StartTime != "09:00" || got.DurationMinutes != blockDuration {
		t.Errorf("placed at %s for %dm, want 09:00 for %dm",
			got.StartTime, got.DurationMinutes, blockDuration)
	}
}

func TestAddOnOccupiedSlotRefused(t *testing.T) {
	it := makeItem(t, "essay", "09:00", 30)
	m, _ := newTestModel(t, it)

	m, _ = press(m, keyRune('b'))
	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal on occupied slot", m.mode)
	}
}

func TestDeleteRemovesItem(t *testing.T) {
	it := makeItem(t, "essay", "09:00", 30)
	m, repo := newTestModel(t, it)

	var cmd tea.Cmd
	m, cmd = press(m, keyRune('d'))
	m = runCmd(t, m, cmd)

	if _, err := repo.GetItem(context.Background(), it.ID); err == nil {
		t.Fatalf("item still present after delete")
	}
	if m.grid.itemAt(0) != nil {
		t.Errorf("grid not refreshed after delete")
	}
}

func TestDayNavigationReloads(t *testing.T) {
	today := makeItem(t, "today", "09:00", 30)
	tomorrow, err := schedule.NewItem("tomorrow", "owner-1", testDate.AddDate(0, 0, 1), "09:00", 30)
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	m, _ := newTestModel(t, today, tomorrow)

	var cmd tea.Cmd
	m, cmd = press(m, keyRune('l'))
	m = runCmd(t, m, cmd)

	got := m.grid.itemAt(0)
	if got == nil || got.Title != "tomorrow" {
		t.Fatalf("after next day, itemAt(0) = %v, want tomorrow", got)
	}

	m, cmd = press(m, keyRune('h'))
	m = runCmd(t, m, cmd)
	got = m.grid.itemAt(0)
	if got == nil || got.Title != "today" {
		t.Fatalf("after prev day, itemAt(0) = %v, want today", got)
	}
}
