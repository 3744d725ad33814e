// Package grid is a scrollable pane showing a rendered calendar grid.
package grid

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/calgrid/internal/render"
	"github.com/julianstephens/calgrid/internal/view"
)

type Model struct {
	viewport viewport.Model
	grid     *view.Grid
	selected string
	width    int
	height   int
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	// Only vertical scrolling; the letter keys belong to the calendar.
	vp.KeyMap = viewport.KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}
	return Model{viewport: vp, width: width, height: height}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.grid == nil {
		return "Loading..."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

// SetGrid replaces the shown grid and scrolls back to the top.
func (m *Model) SetGrid(g view.Grid) {
	m.grid = &g
	m.render()
	m.viewport.GotoTop()
}

// SetSelected highlights the event with the given id.
func (m *Model) SetSelected(id string) {
	m.selected = id
	m.render()
}

func (m *Model) render() {
	if m.grid == nil {
		return
	}
	m.viewport.SetContent(render.Grid(*m.grid, render.Options{Width: m.width, SelectedID: m.selected}))
}
