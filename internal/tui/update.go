package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kasunala/studyflow/internal/dateutil"
	"github.com/kasunala/studyflow/internal/planner"
	"github.com/kasunala/studyflow/internal/schedule"
)

type itemsLoadedMsg struct {
	items []*schedule.Item
	err   error
}

type placedMsg struct {
	res *planner.Result
	err error
}

type toggledMsg struct {
	item *schedule.Item
	err  error
}

type removedMsg struct {
	title string
	err   error
}

func loadItems(repo schedule.Repository, date time.Time) tea.Cmd {
	return func() tea.Msg {
		items, err := repo.ListItemsByDate(context.Background(), date)
		return itemsLoadedMsg{items: items, err: err}
	}
}

func placeItem(p *planner.Planner, req planner.Request) tea.Cmd {
	return func() tea.Msg {
		res, err := p.Place(context.Background(), req)
		return placedMsg{res: res, err: err}
	}
}

func toggleItem(p *planner.Planner, id string) tea.Cmd {
	return func() tea.Msg {
		item, err := p.ToggleComplete(context.Background(), id)
		return toggledMsg{item: item, err: err}
	}
}

func removeItem(p *planner.Planner, id, title string) tea.Cmd {
	return func() tea.Msg {
		err := p.Remove(context.Background(), id)
		return removedMsg{title: title, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case itemsLoadedMsg:
		snap := m.loading
		m.loading = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.items = msg.items
		m.grid = newDayGrid(msg.items, m.window)
		m.clampCursor()
		if snap && m.mode == ModeNormal {
			if s := m.grid.firstItemSlot(0); s >= 0 {
				m.cursor = s
			}
		}
		return m, nil

	case placedMsg:
		m.mode = ModeNormal
		m.moving = nil
		if msg.err != nil {
			m.setError(msg.err)
			return m, loadItems(m.repo, m.date)
		}
		it := msg.res.Item
		switch {
		case msg.res.Unresolved:
			m.setStatus("no free slot, kept at " + it.StartTime)
		case msg.res.Status == planner.StatusRescheduled:
			m.setStatus("slot busy, moved to " + it.StartTime + "-" + it.EndTime())
		default:
			m.setStatus("placed at " + it.StartTime + "-" + it.EndTime())
		}
		m.cursor = m.grid.minutesToSlot(it.StartMinutes())
		m.clampCursor()
		return m, loadItems(m.repo, m.date)

	case toggledMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		if msg.item.Completed {
			m.setStatus("completed " + msg.item.Title)
		} else {
			m.setStatus("reopened " + msg.item.Title)
		}
		return m, loadItems(m.repo, m.date)

	case removedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.setStatus("removed " + msg.title)
		return m, loadItems(m.repo, m.date)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.mode == ModeAdd {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeMove:
		return m.handleMoveKeys(msg)
	case ModeAdd:
		return m.handleAddKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.grid.numSlots()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.PrevDay):
		return m.gotoDate(m.date.AddDate(0, 0, -1))

	case key.Matches(msg, m.keys.NextDay):
		return m.gotoDate(m.date.AddDate(0, 0, 1))

	case key.Matches(msg, m.keys.Today):
		return m.gotoDate(dateutil.TruncateToDay(time.Now()))

	case key.Matches(msg, m.keys.Move):
		it := m.selectedItem()
		if it == nil {
			m.setStatus("nothing to move here")
			return m, nil
		}
		m.mode = ModeMove
		m.moving = it
		m.pendingMin = m.clampStart(it.StartMinutes(), it.DurationMinutes)
		m.origDate = m.date
		m.setStatus("moving " + it.Title)

	case key.Matches(msg, m.keys.Add):
		if m.selectedItem() != nil {
			m.setStatus("slot occupied")
			return m, nil
		}
		m.mode = ModeAdd
		m.input.Reset()
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Toggle):
		it := m.selectedItem()
		if it == nil {
			return m, nil
		}
		if it.Blocked {
			m.setStatus("blocked time cannot be completed")
			return m, nil
		}
		return m, toggleItem(m.planner, it.ID)

	case key.Matches(msg, m.keys.Delete):
		it := m.selectedItem()
		if it == nil {
			return m, nil
		}
		return m, removeItem(m.planner, it.ID, it.Title)

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, loadItems(m.repo, m.date)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) handleMoveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = ModeNormal
		m.moving = nil
		m.setStatus("move cancelled")
		if !m.date.Equal(m.origDate) {
			return m.gotoDate(m.origDate)
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m, placeItem(m.planner, planner.Request{
			ItemID:   m.moving.ID,
			Date:     m.date,
			Start:    schedule.MinutesToTime(m.pendingMin),
			Duration: m.moving.DurationMinutes,
		})

	case key.Matches(msg, m.keys.Up):
		m.pendingMin = m.clampStart(m.pendingMin-m.window.SlotMinutes, m.moving.DurationMinutes)

	case key.Matches(msg, m.keys.Down):
		m.pendingMin = m.clampStart(m.pendingMin+m.window.SlotMinutes, m.moving.DurationMinutes)

	case key.Matches(msg, m.keys.PrevDay):
		return m.gotoDate(m.date.AddDate(0, 0, -1))

	case key.Matches(msg, m.keys.NextDay):
		return m.gotoDate(m.date.AddDate(0, 0, 1))

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case "enter":
		title := strings.TrimSpace(m.input.Value())
		m.mode = ModeNormal
		m.input.Blur()
		if title == "" {
			return m, nil
		}
		return m, placeItem(m.planner, planner.Request{
			Title:    title,
			Date:     m.date,
			Start:    m.grid.slotTime(m.cursor),
			Duration: blockDuration,
			Blocked:  true,
		})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// gotoDate switches the view to another day and reloads its items.
func (m Model) gotoDate(date time.Time) (tea.Model, tea.Cmd) {
	m.date = date
	m.loading = true
	return m, loadItems(m.repo, m.date)
}

// clampStart keeps a candidate start inside the window, leaving room for
// the full duration when the window allows it.
func (m Model) clampStart(min, duration int) int {
	max := m.window.EndMinutes - duration
	if max < m.window.StartMinutes {
		max = m.window.StartMinutes
	}
	if min > max {
		min = max
	}
	if min < m.window.StartMinutes {
		min = m.window.StartMinutes
	}
	return min
}

func (m *Model) clampCursor() {
	if n := m.grid.numSlots(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}
