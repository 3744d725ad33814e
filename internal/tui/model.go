// Package tui is the interactive terminal host of the calendar engine.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/calgrid/internal/detail"
	"github.com/julianstephens/calgrid/internal/engine"
	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/tui/components/grid"
	"github.com/julianstephens/calgrid/internal/view"
)

type SessionState int

const (
	StateGrid SessionState = iota
	StateDetail
	StateCalendarForm
)

// inbox collects the controller's notifications between updates.
type inbox struct {
	activated *models.Event
	failure   string
	rebuilt   bool
}

func (b *inbox) EventActivated(e models.Event) { b.activated = &e }
func (b *inbox) GridRebuilt(view.Grid)         { b.rebuilt = true }
func (b *inbox) LoadFailed(msg string)         { b.failure = msg }

// eventsLoadedMsg carries the result of a fetch issued by loadCmd.
type eventsLoadedMsg struct {
	rng     models.DateRange
	records []models.EventRecord
	err     error
}

type Model struct {
	ctrl            *engine.Controller
	inbox           *inbox
	panel           *detail.Panel
	nav             *Navigator
	state           SessionState
	keys            KeyMap
	help            help.Model
	gridModel       grid.Model
	form            *huh.Form
	calendarForm    *CalendarFormModel
	editingCalendar bool // set once a calendar has been picked
	selected        int  // index into the grid's events, -1 when none
	loading         bool
	status          string
	errMsg          string
	quitting        bool
	width           int
	height          int
}

func newModel(ctrl *engine.Controller, b *inbox, nav *Navigator) Model {
	gm := grid.New(0, 0)
	gm.SetGrid(ctrl.Grid())
	return Model{
		ctrl:      ctrl,
		inbox:     b,
		panel:     detail.NewPanel(nav, ctrl.Settings().DetailAction),
		nav:       nav,
		state:     StateGrid,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		gridModel: gm,
		selected:  -1,
		loading:   true,
	}
}

// New wires a controller for the TUI. build receives the listener the
// controller must be created with.
func New(build func(listener engine.Listener) *engine.Controller, nav *Navigator) Model {
	b := &inbox{}
	return newModel(build(b), b, nav)
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case StateDetail:
		return []key.Binding{m.keys.OpenRecord, m.keys.LaunchFlow, m.keys.Close, m.keys.Quit}
	default:
		return m.keys.ShortHelp()
	}
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd(m.ctrl.Range())
}

// loadCmd fetches r off the update loop. Responses are applied in arrival
// order by Update.
func (m Model) loadCmd(r models.DateRange) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		records, err := ctrl.Fetch(context.Background(), r)
		return eventsLoadedMsg{rng: r, records: records, err: err}
	}
}
