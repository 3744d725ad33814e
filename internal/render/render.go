// Package render paints grids, calendar legends and detail sheets as
// terminal text.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/calgrid/internal/detail"
	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/view"
)

const (
	slotLabelWidth = 7
	minColumnWidth = 8
	defaultWidth   = 100
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	todayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	slotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(slotLabelWidth)

	selectedStyle = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)
)

// Options controls how a grid is painted.
type Options struct {
	Width      int    // total width in cells; 0 means defaultWidth
	SelectedID string // event drawn highlighted
}

// Grid paints g according to its kind.
func Grid(g view.Grid, opts Options) string {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	var body string
	switch g.Kind {
	case models.ViewMonth:
		if g.Month != nil {
			body = month(*g.Month, opts)
		}
	case models.ViewWeek:
		if g.Week != nil {
			body = week(*g.Week, opts)
		}
	case models.ViewDay:
		if g.Day != nil {
			body = day(*g.Day, opts)
		}
	case models.ViewAvailability:
		if g.Availability != nil {
			body = availability(*g.Availability, opts)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(g.Title()), body)
}

func month(g view.MonthGrid, opts Options) string {
	colWidth := columnWidth(opts.Width, 0, len(view.Weekdays))

	header := make([]string, len(view.Weekdays))
	for i, d := range view.Weekdays {
		header[i] = cell(headerStyle, colWidth).Render(d)
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	var week []string
	for _, c := range g.Cells {
		week = append(week, monthCell(c, colWidth, opts))
		if len(week) == len(view.Weekdays) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
			week = nil
		}
	}
	if len(week) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func monthCell(c view.DayCell, width int, opts Options) string {
	if c.Empty {
		return cell(dimStyle, width).Render("")
	}
	label := strconv.Itoa(c.Day)
	if c.IsToday {
		label = todayStyle.Render(label)
	}
	lines := []string{label}
	for _, e := range c.Events {
		lines = append(lines, eventLine(e, width, opts))
	}
	return cell(lipgloss.NewStyle(), width).Render(strings.Join(lines, "\n"))
}

func week(g view.WeekGrid, opts Options) string {
	colWidth := columnWidth(opts.Width, slotLabelWidth, len(g.Days))

	header := []string{slotStyle.Render("")}
	for _, d := range g.Days {
		header = append(header, dayHeader(d, colWidth))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for _, r := range g.Rows {
		cols := []string{slotStyle.Render(r.Slot.Label)}
		for _, c := range r.Cells {
			cols = append(cols, eventsCell(c.Events, colWidth, opts))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func day(g view.DayGrid, opts Options) string {
	colWidth := columnWidth(opts.Width, slotLabelWidth, 1)

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, slotStyle.Render(""), dayHeader(g.Header, colWidth))}
	for _, r := range g.Rows {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			slotStyle.Render(r.Slot.Label),
			eventsCell(r.Events, colWidth, opts),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func availability(g view.AvailabilityGrid, opts Options) string {
	if len(g.Columns) == 0 {
		return dimStyle.Render("No visible calendars.")
	}
	colWidth := columnWidth(opts.Width, slotLabelWidth, len(g.Columns))

	header := []string{slotStyle.Render("")}
	for _, c := range g.Columns {
		style := headerStyle.Foreground(lipgloss.Color(c.Color))
		header = append(header, cell(style, colWidth).Render(truncate(c.Name, colWidth-1)))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for _, r := range g.Rows {
		cols := []string{slotStyle.Render(r.Slot.Label)}
		for _, events := range r.Cells {
			cols = append(cols, eventsCell(events, colWidth, opts))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func dayHeader(d view.DayHeader, width int) string {
	if d.IsToday {
		return cell(todayStyle, width).Render(d.Label)
	}
	return cell(headerStyle, width).Render(d.Label)
}

func eventsCell(events []view.StyledEvent, width int, opts Options) string {
	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, eventLine(e, width, opts))
	}
	if len(lines) == 0 {
		lines = append(lines, dimStyle.Render("·"))
	}
	return cell(lipgloss.NewStyle(), width).Render(strings.Join(lines, "\n"))
}

// eventLine draws an event with its calendar color as a left bar.
func eventLine(e view.StyledEvent, width int, opts Options) string {
	text := truncate(e.Start.Format("15:04")+" "+e.Title, width-2)
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(e.Color))
	if e.ID == opts.SelectedID {
		style = style.Inherit(selectedStyle)
	}
	return style.Render(text)
}

func cell(style lipgloss.Style, width int) lipgloss.Style {
	return style.Width(width).PaddingRight(1)
}

func columnWidth(total, reserved, columns int) int {
	if columns <= 0 {
		return minColumnWidth
	}
	w := (total-reserved)/columns - 1
	if w < minColumnWidth {
		return minColumnWidth
	}
	return w
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// Calendars paints the calendar legend with visibility markers.
func Calendars(calendars []models.Calendar) string {
	if len(calendars) == 0 {
		return dimStyle.Render("No calendars configured.")
	}
	lines := make([]string, len(calendars))
	for i, c := range calendars {
		mark := "[x]"
		if !c.Visible {
			mark = "[ ]"
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("■")
		lines[i] = fmt.Sprintf("%s %s %s %s", mark, swatch, c.Name, dimStyle.Render("("+c.ID+", "+c.Color+")"))
	}
	return strings.Join(lines, "\n")
}

// Sheet paints an event detail sheet.
func Sheet(s detail.Sheet) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.Color)).
		Padding(0, 1)

	rows := []string{
		titleStyle.Render(s.Title),
		row("Type", s.EventType+" ("+s.Icon+")"),
		row("Start", s.Start),
		row("End", s.End),
		row("Location", s.Location),
	}
	if s.OwnerName != "" {
		rows = append(rows, row("Owner", s.OwnerName))
	}
	if s.Description != "" {
		rows = append(rows, "", s.Description)
	}
	actions := "[o] open record  [esc] close"
	if s.ShowFlow() {
		actions = "[o] open record  [f] " + s.Flow + "  [esc] close"
	}
	rows = append(rows, "", dimStyle.Render(actions))
	return border.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}
