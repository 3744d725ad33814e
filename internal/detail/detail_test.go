package detail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/calgrid/internal/models"
)

type fakeNavigator struct {
	opened   []RecordRef
	launched []string
	err      error
}

func (f *fakeNavigator) OpenRecord(_ context.Context, ref RecordRef) error {
	if f.err != nil {
		return f.err
	}
	f.opened = append(f.opened, ref)
	return nil
}

func (f *fakeNavigator) LaunchFlow(_ context.Context, flow string, ref RecordRef) error {
	f.launched = append(f.launched, flow+":"+ref.RecordID)
	return nil
}

func testEvent() models.Event {
	return models.Event{
		ID:          "00U1",
		Title:       "Site visit",
		Start:       time.Date(2025, 3, 4, 9, 5, 0, 0, time.Local),
		End:         time.Date(2025, 3, 4, 10, 30, 0, 0, time.Local),
		CalendarID:  "myEvents",
		Description: "Bring the badge",
		OwnerName:   "Ada",
		EventType:   "ServiceAppointment",
		Color:       "#1589EE",
	}
}

func TestNewSheet(t *testing.T) {
	s := NewSheet(testEvent(), "")

	if s.Start != "04/03/2025 09:05" || s.End != "04/03/2025 10:30" {
		t.Errorf("times = %q, %q", s.Start, s.End)
	}
	if s.Location != NoLocation {
		t.Errorf("Location = %q, want %q", s.Location, NoLocation)
	}
	if s.Icon != IconAppointment {
		t.Errorf("Icon = %q", s.Icon)
	}
	if s.ShowFlow() {
		t.Error("flow should be hidden without a detail action")
	}

	empty := NewSheet(models.Event{}, "Approve")
	if empty.Title != DefaultTitle || empty.Start != "" || empty.End != "" {
		t.Errorf("empty sheet = %+v", empty)
	}
	if !empty.ShowFlow() {
		t.Error("flow should show when a detail action is configured")
	}
}

func TestIcon(t *testing.T) {
	tests := map[string]string{
		"ServiceAppointment": IconAppointment,
		"Task":               IconTask,
		"Event":              IconEvent,
		"":                   IconEvent,
	}
	for eventType, want := range tests {
		if got := Icon(eventType); got != want {
			t.Errorf("Icon(%q) = %q, want %q", eventType, got, want)
		}
	}
}

func TestPanelOpenRecord(t *testing.T) {
	nav := &fakeNavigator{}
	p := NewPanel(nav, "")

	if err := p.OpenRecord(context.Background()); !errors.Is(err, ErrNoEvent) {
		t.Errorf("OpenRecord() with nothing shown = %v", err)
	}

	e := testEvent()
	e.EventType = ""
	p.Show(e)
	if err := p.OpenRecord(context.Background()); err != nil {
		t.Fatalf("OpenRecord() error = %v", err)
	}
	want := RecordRef{RecordID: "00U1", ObjectAPIName: "Event", ActionName: "view"}
	if len(nav.opened) != 1 || nav.opened[0] != want {
		t.Errorf("opened = %+v, want %+v", nav.opened, want)
	}
	if p.IsOpen() {
		t.Error("panel should close after opening the record")
	}
}

func TestPanelOpenRecordFailureKeepsPanel(t *testing.T) {
	nav := &fakeNavigator{err: errors.New("no browser")}
	p := NewPanel(nav, "")
	p.Show(testEvent())

	if err := p.OpenRecord(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	if !p.IsOpen() {
		t.Error("panel should stay open when navigation fails")
	}
}

func TestPanelLaunchFlow(t *testing.T) {
	nav := &fakeNavigator{}

	p := NewPanel(nav, "")
	p.Show(testEvent())
	if err := p.LaunchFlow(context.Background()); err != nil || len(nav.launched) != 0 {
		t.Errorf("LaunchFlow() without flow = %v, launched %v", err, nav.launched)
	}

	p = NewPanel(nav, "Reschedule")
	p.Show(testEvent())
	if err := p.LaunchFlow(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(nav.launched) != 1 || nav.launched[0] != "Reschedule:00U1" {
		t.Errorf("launched = %v", nav.launched)
	}
	if !p.IsOpen() {
		t.Error("launching a flow should not close the panel")
	}
}
