// Package view builds the four grid shapes of the calendar from an anchor
// date, the loaded events and the calendar registry. Every build returns a
// fresh value; nothing here mutates view state or its inputs.
package view

import (
	"fmt"
	"time"

	"github.com/julianstephens/calgrid/internal/bucket"
	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/timeslot"
	"github.com/julianstephens/calgrid/internal/utils"
)

// weekdayColumns is the number of day columns in a week grid (Monday-Friday).
const weekdayColumns = 5

// Calendars is the registry surface the builder reads.
type Calendars interface {
	FilterVisible(events []models.Event) []models.Event
	VisibleCalendars() []models.Calendar
}

// Options carries the working-hours window and the reference "today".
type Options struct {
	WorkStart   string
	WorkEnd     string
	SlotMinutes int
	Today       time.Time
}

// OptionsFromSettings builds Options from settings, using now as today.
func OptionsFromSettings(s models.Settings, now time.Time) Options {
	return Options{
		WorkStart:   s.WorkStart,
		WorkEnd:     s.WorkEnd,
		SlotMinutes: s.SlotMinutes,
		Today:       now,
	}
}

func (o Options) slots() []models.TimeSlot {
	return timeslot.Generate(o.WorkStart, o.WorkEnd, o.SlotMinutes)
}

// Build dispatches on state.Kind and returns the matching grid shape.
func Build(state models.ViewState, events []models.Event, cals Calendars, opts Options) Grid {
	switch state.Kind {
	case models.ViewWeek:
		g := BuildWeekGrid(utils.MondayOf(state.Anchor), events, cals, opts)
		return Grid{Kind: models.ViewWeek, Week: &g}
	case models.ViewDay:
		g := BuildDayGrid(state.Anchor, events, cals, opts)
		return Grid{Kind: models.ViewDay, Day: &g}
	case models.ViewAvailability:
		g := BuildAvailabilityGrid(state.Anchor, events, cals.VisibleCalendars(), opts)
		return Grid{Kind: models.ViewAvailability, Availability: &g}
	default:
		g := BuildMonthGrid(state.Anchor, events, cals, opts.Today)
		return Grid{Kind: models.ViewMonth, Month: &g}
	}
}

// BuildMonthGrid lays out anchor's month Monday-first: leading empty cells pad
// the first week, then one cell per day carrying that day's visible events.
func BuildMonthGrid(anchor time.Time, events []models.Event, cals Calendars, today time.Time) MonthGrid {
	first := utils.FirstOfMonth(anchor)
	daysInMonth := utils.LastOfMonth(anchor).Day()
	leading := utils.MondayIndex(first.Weekday())
	visible := cals.FilterVisible(events)

	cells := make([]DayCell, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		cells = append(cells, DayCell{
			Key:    fmt.Sprintf("empty-%d", i),
			Empty:  true,
			Events: []StyledEvent{},
		})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := first.AddDate(0, 0, day-1)
		styled := style(bucket.EventsForDay(visible, date))
		cells = append(cells, DayCell{
			Key:       fmt.Sprintf("day-%d", day),
			Day:       day,
			Date:      date,
			IsToday:   utils.SameDay(date, today),
			HasEvents: len(styled) > 0,
			Events:    styled,
		})
	}

	return MonthGrid{
		Title: MonthTitle(first),
		Year:  first.Year(),
		Month: first.Month(),
		Cells: cells,
	}
}

// BuildWeekGrid lays out Monday through Friday starting at weekStart, one row
// per working-hours slot. Events outside the window are not shown.
func BuildWeekGrid(weekStart time.Time, events []models.Event, cals Calendars, opts Options) WeekGrid {
	monday := utils.DateOnly(weekStart)
	visible := cals.FilterVisible(events)

	days := make([]DayHeader, weekdayColumns)
	perDay := make([][]models.Event, weekdayColumns)
	for i := range days {
		date := monday.AddDate(0, 0, i)
		days[i] = header(date, opts.Today)
		perDay[i] = bucket.EventsForDay(visible, date)
	}

	slots := opts.slots()
	rows := make([]WeekRow, len(slots))
	for r, slot := range slots {
		cells := make([]SlotCell, weekdayColumns)
		for d := range cells {
			cells[d] = SlotCell{
				Date:   days[d].Date,
				Events: style(bucket.EventsForSlot(perDay[d], slot, opts.SlotMinutes)),
			}
		}
		rows[r] = WeekRow{Slot: slot, Cells: cells}
	}

	return WeekGrid{
		Title: WeekTitle(monday),
		Start: monday,
		Days:  days,
		Rows:  rows,
	}
}

// BuildDayGrid is a single column of the week grid for anchor.
func BuildDayGrid(anchor time.Time, events []models.Event, cals Calendars, opts Options) DayGrid {
	date := utils.DateOnly(anchor)
	dayEvents := bucket.EventsForDay(cals.FilterVisible(events), date)

	slots := opts.slots()
	rows := make([]DayRow, len(slots))
	for r, slot := range slots {
		rows[r] = DayRow{
			Slot:   slot,
			Events: style(bucket.EventsForSlot(dayEvents, slot, opts.SlotMinutes)),
		}
	}

	return DayGrid{
		Title:  DayTitle(date),
		Header: header(date, opts.Today),
		Rows:   rows,
	}
}

// BuildAvailabilityGrid lays out anchor's slots against one column per
// calendar, in the order given.
func BuildAvailabilityGrid(anchor time.Time, events []models.Event, calendars []models.Calendar, opts Options) AvailabilityGrid {
	date := utils.DateOnly(anchor)

	columns := make([]CalendarColumn, len(calendars))
	perCalendar := make([][]models.Event, len(calendars))
	for i, c := range calendars {
		columns[i] = CalendarColumn{ID: c.ID, Name: c.Name, Color: c.Color}
		perCalendar[i] = bucket.EventsForDay(bucket.EventsForCalendar(events, c.ID), date)
	}

	slots := opts.slots()
	rows := make([]AvailabilityRow, len(slots))
	for r, slot := range slots {
		cells := make([][]StyledEvent, len(columns))
		for c := range cells {
			cells[c] = style(bucket.EventsForSlot(perCalendar[c], slot, opts.SlotMinutes))
		}
		rows[r] = AvailabilityRow{Slot: slot, Cells: cells}
	}

	return AvailabilityGrid{
		Title:   "Availability " + DayTitle(date),
		Date:    date,
		Columns: columns,
		Rows:    rows,
	}
}

// MonthTitle renders "March 2025".
func MonthTitle(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Month(), t.Year())
}

// WeekTitle renders the Monday-Friday span, e.g. "10 Mar - 14 Mar 2025".
func WeekTitle(monday time.Time) string {
	friday := monday.AddDate(0, 0, weekdayColumns-1)
	return fmt.Sprintf("%s - %s", monday.Format("02 Jan"), friday.Format("02 Jan 2006"))
}

// DayTitle renders "Friday 14 March 2025".
func DayTitle(t time.Time) string {
	return t.Format("Monday 02 January 2006")
}

func header(date, today time.Time) DayHeader {
	return DayHeader{
		Date:    date,
		Label:   date.Format("Mon 02"),
		IsToday: utils.SameDay(date, today),
	}
}

func style(events []models.Event) []StyledEvent {
	out := make([]StyledEvent, len(events))
	for i, e := range events {
		out[i] = StyledEvent{Event: e, Style: EventStyle(e.Color)}
	}
	return out
}
