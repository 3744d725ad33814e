package render

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/calgrid/internal/detail"
	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/registry"
	"github.com/julianstephens/calgrid/internal/view"
)

func testGrid(kind models.ViewKind) view.Grid {
	reg := registry.New(
		models.Calendar{ID: "myEvents", Name: "My Events", Color: "#1589EE", Visible: true},
		models.Calendar{ID: "rooms", Name: "Rooms", Color: "#E3652A", Visible: true},
	)
	events := []models.Event{{
		ID:         "standup",
		Title:      "Standup",
		Start:      time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local),
		End:        time.Date(2025, 3, 14, 9, 15, 0, 0, time.Local),
		CalendarID: "myEvents",
		Color:      "#1589EE",
	}}
	opts := view.Options{WorkStart: "08:00", WorkEnd: "12:00", SlotMinutes: 60, Today: time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)}
	return view.Build(models.ViewState{Kind: kind, Anchor: opts.Today}, events, reg, opts)
}

func TestGrid(t *testing.T) {
	tests := []struct {
		kind models.ViewKind
		want []string
	}{
		{kind: models.ViewMonth, want: []string{"March 2025", "Mon", "Sun", "31", "09:00"}},
		{kind: models.ViewWeek, want: []string{"10 Mar - 14 Mar 2025", "Fri 14", "08:00", "11:00", "09:00 Standup"}},
		{kind: models.ViewDay, want: []string{"Friday 14 March 2025", "09:00 Standup"}},
		{kind: models.ViewAvailability, want: []string{"Availability", "My Events", "Rooms", "09:00 Standup"}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			out := Grid(testGrid(tt.kind), Options{Width: 120})
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestGridWithoutShape(t *testing.T) {
	out := Grid(view.Grid{Kind: models.ViewWeek}, Options{})
	if strings.Contains(out, "Standup") {
		t.Error("empty grid should render no events")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{in: "Standup", n: 10, want: "Standup"},
		{in: "Standup", n: 5, want: "Stan…"},
		{in: "Standup", n: 1, want: "…"},
		{in: "Standup", n: 0, want: ""},
		{in: "Riunione è", n: 9, want: "Riunione…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestCalendars(t *testing.T) {
	out := Calendars([]models.Calendar{
		{ID: "myEvents", Name: "My Events", Color: "#1589EE", Visible: true},
		{ID: "team", Name: "Team", Color: "#06A59A", Visible: false},
	})
	if !strings.Contains(out, "[x]") || !strings.Contains(out, "[ ]") || !strings.Contains(out, "Team") {
		t.Errorf("unexpected legend:\n%s", out)
	}
}

func TestSheet(t *testing.T) {
	s := detail.NewSheet(models.Event{ID: "e1", Title: "Review", EventType: "Task", Color: "#06A59A"}, "Reschedule")
	out := Sheet(s)
	for _, want := range []string{"Review", "standard:task", "N/A", "Reschedule"} {
		if !strings.Contains(out, want) {
			t.Errorf("sheet missing %q:\n%s", want, out)
		}
	}
}
