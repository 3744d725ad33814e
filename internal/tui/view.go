package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/render"
)

var viewTabs = []struct {
	kind  models.ViewKind
	title string
}{
	{models.ViewMonth, "Month"},
	{models.ViewWeek, "Week"},
	{models.ViewDay, "Day"},
	{models.ViewAvailability, "Availability"},
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDetail:
		if sheet, ok := m.panel.Current(); ok {
			content = render.Sheet(sheet)
		}
	case StateCalendarForm:
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			render.Calendars(m.ctrl.Registry().Calendars()),
			m.form.View(),
		)
	default:
		content = m.gridModel.View()
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	))
}

func (m Model) viewTabs() string {
	current := m.ctrl.State().Kind
	var tabs []string
	for _, t := range viewTabs {
		if t.kind == current {
			tabs = append(tabs, activeTabStyle.Render(t.title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(t.title))
		}
	}
	title := inactiveTabStyle.Render(m.ctrl.Grid().Title())
	return lipgloss.JoinHorizontal(lipgloss.Top, append(tabs, title)...)
}

func (m Model) viewStatus() string {
	switch {
	case m.errMsg != "":
		return dangerStyle.Render("Error: " + m.errMsg)
	case m.loading:
		return statusStyle.Render("Loading " + m.ctrl.Range().String() + "...")
	default:
		return statusStyle.Render(m.status)
	}
}
