package view

import (
	"fmt"
	"time"

	"github.com/julianstephens/calgrid/internal/models"
)

// Weekdays is the Monday-first column header of month grids.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// StyledEvent is an event as placed in a grid, with its inline style.
type StyledEvent struct {
	models.Event
	Style string `json:"style"`
}

// DayCell is one cell of a month grid. Padding cells are Empty and carry no day.
type DayCell struct {
	Key       string        `json:"key"`
	Day       int           `json:"day"`
	Date      time.Time     `json:"date"`
	Empty     bool          `json:"empty"`
	IsToday   bool          `json:"isToday"`
	HasEvents bool          `json:"hasEvents"`
	Events    []StyledEvent `json:"events"`
}

type MonthGrid struct {
	Title string     `json:"title"`
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Cells []DayCell  `json:"cells"`
}

// DayHeader labels one day column of a time grid.
type DayHeader struct {
	Date    time.Time `json:"date"`
	Label   string    `json:"label"`
	IsToday bool      `json:"isToday"`
}

// SlotCell is the intersection of a slot row and a day column.
type SlotCell struct {
	Date   time.Time     `json:"date"`
	Events []StyledEvent `json:"events"`
}

type WeekRow struct {
	Slot  models.TimeSlot `json:"slot"`
	Cells []SlotCell      `json:"cells"`
}

// WeekGrid is row-major: one row per slot, one cell per weekday (Mon-Fri).
type WeekGrid struct {
	Title string      `json:"title"`
	Start time.Time   `json:"start"`
	Days  []DayHeader `json:"days"`
	Rows  []WeekRow   `json:"rows"`
}

type DayRow struct {
	Slot   models.TimeSlot `json:"slot"`
	Events []StyledEvent   `json:"events"`
}

type DayGrid struct {
	Title  string    `json:"title"`
	Header DayHeader `json:"header"`
	Rows   []DayRow  `json:"rows"`
}

// CalendarColumn heads one column of an availability grid.
type CalendarColumn struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// AvailabilityRow holds one event list per column, in column order.
type AvailabilityRow struct {
	Slot  models.TimeSlot `json:"slot"`
	Cells [][]StyledEvent `json:"cells"`
}

type AvailabilityGrid struct {
	Title   string            `json:"title"`
	Date    time.Time         `json:"date"`
	Columns []CalendarColumn  `json:"columns"`
	Rows    []AvailabilityRow `json:"rows"`
}

// Grid is the output of a build. Exactly one shape is set, selected by Kind.
type Grid struct {
	Kind         models.ViewKind   `json:"kind"`
	Month        *MonthGrid        `json:"month,omitempty"`
	Week         *WeekGrid         `json:"week,omitempty"`
	Day          *DayGrid          `json:"day,omitempty"`
	Availability *AvailabilityGrid `json:"availability,omitempty"`
}

// Title returns the heading of whichever shape the grid holds.
func (g Grid) Title() string {
	switch g.Kind {
	case models.ViewMonth:
		if g.Month != nil {
			return g.Month.Title
		}
	case models.ViewWeek:
		if g.Week != nil {
			return g.Week.Title
		}
	case models.ViewDay:
		if g.Day != nil {
			return g.Day.Title
		}
	case models.ViewAvailability:
		if g.Availability != nil {
			return g.Availability.Title
		}
	}
	return ""
}

// Events flattens the grid in display order (cells left to right, rows top to bottom).
func (g Grid) Events() []StyledEvent {
	var out []StyledEvent
	switch g.Kind {
	case models.ViewMonth:
		if g.Month == nil {
			return out
		}
		for _, c := range g.Month.Cells {
			out = append(out, c.Events...)
		}
	case models.ViewWeek:
		if g.Week == nil {
			return out
		}
		for _, r := range g.Week.Rows {
			for _, c := range r.Cells {
				out = append(out, c.Events...)
			}
		}
	case models.ViewDay:
		if g.Day == nil {
			return out
		}
		for _, r := range g.Day.Rows {
			out = append(out, r.Events...)
		}
	case models.ViewAvailability:
		if g.Availability == nil {
			return out
		}
		for _, r := range g.Availability.Rows {
			for _, c := range r.Cells {
				out = append(out, c...)
			}
		}
	}
	return out
}

// EventStyle returns the inline style for an event of the given color.
func EventStyle(color string) string {
	return fmt.Sprintf("background-color: %s; border-left: 4px solid %s;", color, color)
}
