// Package bucket assigns events to the day cells and slot rows they occupy.
// Callers filter by calendar visibility first; bucketing is range logic only.
package bucket

import (
	"time"

	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/timeslot"
	"github.com/julianstephens/calgrid/internal/utils"
)

// EventsForDay returns the events whose start falls on day (exact year, month
// and day match), in input order.
func EventsForDay(events []models.Event, day time.Time) []models.Event {
	out := make([]models.Event, 0)
	for _, e := range events {
		if utils.SameDay(e.Start, day) {
			out = append(out, e)
		}
	}
	return out
}

// EventsForSlot returns the day's events whose start minute falls inside slot.
// Only the start is used: an event occupies exactly one row no matter how long it runs.
func EventsForSlot(dayEvents []models.Event, slot models.TimeSlot, durationMinutes int) []models.Event {
	out := make([]models.Event, 0)
	for _, e := range dayEvents {
		if timeslot.Contains(slot, durationMinutes, e.StartMinutes()) {
			out = append(out, e)
		}
	}
	return out
}

// EventsForCalendar returns the events belonging to calendarID, in input order.
func EventsForCalendar(events []models.Event, calendarID string) []models.Event {
	out := make([]models.Event, 0)
	for _, e := range events {
		if e.CalendarID == calendarID {
			out = append(out, e)
		}
	}
	return out
}
