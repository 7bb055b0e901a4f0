package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kasunala/studyflow/internal/config"
	"github.com/kasunala/studyflow/internal/dateutil"
	"github.com/kasunala/studyflow/internal/planner"
	"github.com/kasunala/studyflow/internal/schedule"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeMove        // A task is picked up and follows the cursor
	ModeAdd         // Naming a new blocked-time window
)

// blockDuration is the length of a blocked window created from the grid.
const blockDuration = 60

// Model is the bubbletea model for the day calendar.
type Model struct {
	repo    schedule.Repository
	planner *planner.Planner
	window  schedule.Window

	keys   keyMap
	styles Styles
	help   help.Model
	input  textinput.Model

	date   time.Time
	items  []*schedule.Item
	grid   *dayGrid
	cursor int // slot index within the window

	mode       Mode
	moving     *schedule.Item
	pendingMin int       // candidate start while moving
	origDate   time.Time // restored on cancel

	status    string
	statusErr bool
	loading   bool

	width  int
	height int
}

// NewModel creates the day view anchored on today.
func NewModel(repo schedule.Repository, p *planner.Planner, w schedule.Window) Model {
	input := textinput.New()
	input.Placeholder = "blocked time title"
	input.CharLimit = 80

	return Model{
		repo:    repo,
		planner: p,
		window:  w,
		keys:    defaultKeyMap(),
		styles:  NewStyles(),
		help:    help.New(),
		input:   input,
		date:    dateutil.TruncateToDay(time.Now()),
		grid:    newDayGrid(nil, w),
		loading: true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return loadItems(m.repo, m.date)
}

// selectedItem returns the item under the cursor, or nil on a free slot.
func (m Model) selectedItem() *schedule.Item {
	return m.grid.itemAt(m.cursor)
}

// Run starts the interactive day calendar and blocks until the user quits.
func Run(repo schedule.Repository, p *planner.Planner, cfg *config.Config) error {
	m := NewModel(repo, p, cfg.Window())
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
