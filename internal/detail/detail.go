// Package detail presents a single activated event and forwards the
// record and flow actions taken from it to the host.
package detail

import (
	"context"
	"errors"
	"time"

	"github.com/julianstephens/calgrid/internal/constants"
	"github.com/julianstephens/calgrid/internal/logger"
	"github.com/julianstephens/calgrid/internal/models"
)

const (
	DefaultTitle    = "Event Detail"
	NoLocation      = "N/A"
	ActionView      = "view"
	IconEvent       = "standard:event"
	IconTask        = "standard:task"
	IconAppointment = "standard:service_appointment"
)

// ErrNoEvent is returned by actions taken while no event is shown.
var ErrNoEvent = errors.New("no event selected")

// Sheet is the display form of an event.
type Sheet struct {
	EventID     string `json:"eventId"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Location    string `json:"location"`
	Description string `json:"description"`
	OwnerName   string `json:"ownerName"`
	EventType   string `json:"eventType"`
	Color       string `json:"color"`
	Flow        string `json:"flow,omitempty"`
}

// ShowFlow reports whether the launch-flow action is available.
func (s Sheet) ShowFlow() bool {
	return s.Flow != ""
}

// NewSheet builds the sheet for e. flow is the configured detail action, if any.
func NewSheet(e models.Event, flow string) Sheet {
	title := e.Title
	if title == "" {
		title = DefaultTitle
	}
	location := e.Location
	if location == "" {
		location = NoLocation
	}
	return Sheet{
		EventID:     e.ID,
		Title:       title,
		Icon:        Icon(e.EventType),
		Start:       formatTimestamp(e.Start),
		End:         formatTimestamp(e.End),
		Location:    location,
		Description: e.Description,
		OwnerName:   e.OwnerName,
		EventType:   e.EventType,
		Color:       e.Color,
		Flow:        flow,
	}
}

// Icon maps an event type to its icon name.
func Icon(eventType string) string {
	switch eventType {
	case "ServiceAppointment":
		return IconAppointment
	case "Task":
		return IconTask
	default:
		return IconEvent
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(constants.DetailTimestampFormat)
}

// RecordRef identifies the record behind an event for the host to open.
type RecordRef struct {
	RecordID      string `json:"recordId"`
	ObjectAPIName string `json:"objectApiName"`
	ActionName    string `json:"actionName"`
}

// Ref returns the reference used to open the sheet's record.
func (s Sheet) Ref() RecordRef {
	object := s.EventType
	if object == "" {
		object = constants.DefaultEventType
	}
	return RecordRef{RecordID: s.EventID, ObjectAPIName: object, ActionName: ActionView}
}

// Navigator performs the actions requested from a sheet.
type Navigator interface {
	OpenRecord(ctx context.Context, ref RecordRef) error
	LaunchFlow(ctx context.Context, flow string, ref RecordRef) error
}

// Panel holds the sheet currently shown, if any.
type Panel struct {
	nav   Navigator
	flow  string
	sheet *Sheet
}

func NewPanel(nav Navigator, flow string) *Panel {
	return &Panel{nav: nav, flow: flow}
}

// Show replaces the shown sheet with one for e.
func (p *Panel) Show(e models.Event) Sheet {
	s := NewSheet(e, p.flow)
	p.sheet = &s
	return s
}

// Current returns the shown sheet.
func (p *Panel) Current() (Sheet, bool) {
	if p.sheet == nil {
		return Sheet{}, false
	}
	return *p.sheet, true
}

func (p *Panel) IsOpen() bool {
	return p.sheet != nil
}

func (p *Panel) Close() {
	p.sheet = nil
}

// OpenRecord asks the navigator to open the shown event's record and closes
// the panel. A sheet without an event id is left open and nothing happens.
func (p *Panel) OpenRecord(ctx context.Context) error {
	if p.sheet == nil {
		return ErrNoEvent
	}
	if p.sheet.EventID == "" {
		return nil
	}
	if err := p.nav.OpenRecord(ctx, p.sheet.Ref()); err != nil {
		return err
	}
	p.Close()
	return nil
}

// LaunchFlow starts the configured flow for the shown event. Without a
// configured flow it does nothing.
func (p *Panel) LaunchFlow(ctx context.Context) error {
	if p.sheet == nil {
		return ErrNoEvent
	}
	if !p.sheet.ShowFlow() {
		logger.Debug("No detail action configured", "event", p.sheet.EventID)
		return nil
	}
	return p.nav.LaunchFlow(ctx, p.sheet.Flow, p.sheet.Ref())
}
