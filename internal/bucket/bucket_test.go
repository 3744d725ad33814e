package bucket

import (
	"testing"
	"time"

	"github.com/julianstephens/calgrid/internal/models"
)

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}

func TestEventsForDay(t *testing.T) {
	events := []models.Event{
		{ID: "a", Start: at(2025, 3, 14, 9, 0), End: at(2025, 3, 14, 10, 0)},
		{ID: "b", Start: at(2025, 3, 15, 0, 0), End: at(2025, 3, 15, 1, 0)},
		{ID: "c", Start: at(2025, 3, 14, 23, 30), End: at(2025, 3, 15, 0, 30)},
		{ID: "d", Start: at(2025, 4, 14, 9, 0), End: at(2025, 4, 14, 10, 0)},
	}

	tests := []struct {
		name string
		day  time.Time
		want []string
	}{
		{name: "matching day keeps order", day: at(2025, 3, 14, 0, 0), want: []string{"a", "c"}},
		{name: "next day only", day: at(2025, 3, 15, 12, 0), want: []string{"b"}},
		{name: "same day of month in april", day: at(2025, 4, 14, 0, 0), want: []string{"d"}},
		{name: "no match", day: at(2025, 3, 16, 0, 0), want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EventsForDay(events, tt.day)
			if len(got) != len(tt.want) {
				t.Fatalf("EventsForDay() = %d events, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("EventsForDay()[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestEventsForSlot(t *testing.T) {
	dayEvents := []models.Event{
		{ID: "on-boundary", Start: at(2025, 3, 14, 9, 0), End: at(2025, 3, 14, 9, 30)},
		{ID: "inside", Start: at(2025, 3, 14, 9, 29), End: at(2025, 3, 14, 9, 45)},
		{ID: "long", Start: at(2025, 3, 14, 9, 15), End: at(2025, 3, 14, 12, 0)},
		{ID: "next-slot", Start: at(2025, 3, 14, 9, 30), End: at(2025, 3, 14, 10, 0)},
		{ID: "early", Start: at(2025, 3, 14, 7, 0), End: at(2025, 3, 14, 9, 45)},
	}

	slot := models.TimeSlot{Label: "09:00", MinutesFromMidnight: 540}
	got := EventsForSlot(dayEvents, slot, 30)

	want := []string{"on-boundary", "inside", "long"}
	if len(got) != len(want) {
		t.Fatalf("EventsForSlot() = %+v, want ids %v", got, want)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("EventsForSlot()[%d] = %s, want %s", i, got[i].ID, id)
		}
	}

	// a long event is only bucketed in its start row
	later := EventsForSlot(dayEvents, models.TimeSlot{Label: "10:00", MinutesFromMidnight: 600}, 30)
	if len(later) != 0 {
		t.Errorf("EventsForSlot(10:00) = %+v, want none", later)
	}
}

func TestEventsForCalendar(t *testing.T) {
	events := []models.Event{
		{ID: "1", CalendarID: "a"},
		{ID: "2", CalendarID: "b"},
		{ID: "3", CalendarID: "a"},
	}
	got := EventsForCalendar(events, "a")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("EventsForCalendar() = %+v", got)
	}
	if got := EventsForCalendar(events, "missing"); len(got) != 0 {
		t.Errorf("EventsForCalendar(missing) = %+v", got)
	}
}
