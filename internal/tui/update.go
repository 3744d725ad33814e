package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/view"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StateCalendarForm {
		return m.updateCalendarForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		// tabs, status line and help
		m.gridModel.SetSize(msg.Width-h, msg.Height-v-4)
		return m, nil

	case eventsLoadedMsg:
		m.loading = false
		m.errMsg = ""
		m.ctrl.Apply(msg.records, msg.err)
		m.drain()
		if msg.err == nil {
			m.status = "Loaded " + msg.rng.String()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.state == StateDetail {
			return m.updateDetail(msg)
		}
		if handled, next, cmd := m.updateGridKeys(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	m.gridModel, cmd = m.gridModel.Update(msg)
	return m, cmd
}

func (m Model) updateGridKeys(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Prev):
		return true, m, m.navigate(m.ctrl.Previous())
	case key.Matches(msg, m.keys.Next):
		return true, m, m.navigate(m.ctrl.Next())
	case key.Matches(msg, m.keys.Today):
		return true, m, m.navigate(m.ctrl.Today())
	case key.Matches(msg, m.keys.Month):
		return true, m, m.switchView(models.ViewMonth)
	case key.Matches(msg, m.keys.Week):
		return true, m, m.switchView(models.ViewWeek)
	case key.Matches(msg, m.keys.Day):
		return true, m, m.switchView(models.ViewDay)
	case key.Matches(msg, m.keys.Availability):
		return true, m, m.switchView(models.ViewAvailability)
	case key.Matches(msg, m.keys.Select):
		m.moveSelection(1)
		return true, m, nil
	case key.Matches(msg, m.keys.SelectPrev):
		m.moveSelection(-1)
		return true, m, nil
	case key.Matches(msg, m.keys.Activate):
		m.activateSelected()
		return true, m, nil
	case key.Matches(msg, m.keys.Calendars):
		cals := m.ctrl.Registry().Calendars()
		if len(cals) == 0 {
			return true, m, nil
		}
		m.calendarForm = &CalendarFormModel{CalendarID: cals[0].ID}
		m.form = NewCalendarPickForm(m.calendarForm, cals)
		m.editingCalendar = false
		m.state = StateCalendarForm
		return true, m, m.form.Init()
	}
	return false, m, nil
}

// navigate rebuilds for the new state right away and fetches its range.
func (m *Model) navigate(r models.DateRange) tea.Cmd {
	m.ctrl.Rebuild()
	m.drain()
	m.loading = true
	return m.loadCmd(r)
}

func (m *Model) switchView(kind models.ViewKind) tea.Cmd {
	r, changed := m.ctrl.SwitchView(kind)
	if !changed {
		return nil
	}
	return m.navigate(r)
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sheet, ok := m.panel.Current()
	if !ok {
		m.state = StateGrid
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Close):
		m.panel.Close()
	case key.Matches(msg, m.keys.OpenRecord):
		if err := m.panel.OpenRecord(context.Background()); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.status = "Opened " + sheet.Ref().ObjectAPIName + " " + sheet.EventID
	case key.Matches(msg, m.keys.LaunchFlow):
		if !sheet.ShowFlow() {
			return m, nil
		}
		if err := m.panel.LaunchFlow(context.Background()); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.status = "Launched " + sheet.Flow + " for " + sheet.EventID
	}
	if !m.panel.IsOpen() {
		m.state = StateGrid
	}
	return m, nil
}

func (m Model) updateCalendarForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateGrid
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		fm := m.calendarForm
		if !m.editingCalendar {
			cal, ok := m.ctrl.Registry().Get(fm.CalendarID)
			if !ok {
				m.state = StateGrid
				return m, nil
			}
			m.form = NewCalendarForm(fm, cal)
			m.editingCalendar = true
			return m, m.form.Init()
		}
		m.ctrl.SetCalendarVisible(fm.CalendarID, fm.Visible)
		m.ctrl.SetCalendarColor(fm.CalendarID, fm.Color)
		m.drain()
		m.status = "Updated calendar " + fm.CalendarID
		m.state = StateGrid
		return m, nil
	case huh.StateAborted:
		m.state = StateGrid
		return m, nil
	}
	return m, cmd
}

// drain applies the controller's pending notifications to the model.
func (m *Model) drain() {
	if m.inbox.failure != "" {
		m.errMsg = m.inbox.failure
		m.inbox.failure = ""
	}
	if m.inbox.rebuilt {
		m.inbox.rebuilt = false
		m.gridModel.SetGrid(m.ctrl.Grid())
		m.clampSelection()
	}
	if e := m.inbox.activated; e != nil {
		m.inbox.activated = nil
		m.panel.Show(*e)
		m.state = StateDetail
	}
}

func (m *Model) events() []view.StyledEvent {
	return m.ctrl.Grid().Events()
}

func (m *Model) moveSelection(delta int) {
	events := m.events()
	if len(events) == 0 {
		m.selected = -1
		m.gridModel.SetSelected("")
		return
	}
	from := m.selected
	if from < 0 && delta < 0 {
		from = len(events)
	}
	m.selected = ((from+delta)%len(events) + len(events)) % len(events)
	m.gridModel.SetSelected(events[m.selected].ID)
}

func (m *Model) clampSelection() {
	events := m.events()
	if m.selected >= len(events) {
		m.selected = -1
	}
	if m.selected < 0 {
		m.gridModel.SetSelected("")
		return
	}
	m.gridModel.SetSelected(events[m.selected].ID)
}

func (m *Model) activateSelected() {
	events := m.events()
	if m.selected < 0 || m.selected >= len(events) {
		return
	}
	m.ctrl.Activate(events[m.selected].ID)
	m.drain()
}
