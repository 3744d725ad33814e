// Package ics reads events from iCalendar (.ics) files.
package ics

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ics "github.com/emersion/go-ical"

	"github.com/julianstephens/calgrid/internal/constants"
	"github.com/julianstephens/calgrid/internal/logger"
	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/source"
	"github.com/julianstephens/calgrid/internal/utils"
)

// defaultDuration applies to events with neither DTEND nor a parseable DURATION.
const defaultDuration = time.Hour

// FileSource serves the events of a local .ics file. The file is re-read on
// every fetch.
type FileSource struct {
	path       string
	calendarID string
}

var _ source.Source = (*FileSource)(nil)

// NewFileSource creates a source for path whose events belong to calendarID.
func NewFileSource(path, calendarID string) *FileSource {
	return &FileSource{path: path, calendarID: calendarID}
}

func (s *FileSource) Fetch(ctx context.Context, startDate, endDate string) ([]models.EventRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open ICS: %w", err)
	}
	defer f.Close()

	all, err := Decode(f, s.calendarID)
	if err != nil {
		return nil, err
	}
	records := make([]models.EventRecord, 0, len(all))
	for _, rec := range all {
		if source.InRange(rec, startDate, endDate) {
			records = append(records, rec)
		}
	}
	return records, nil
}

// Decode reads every VEVENT of every calendar in r. Events that cannot be
// parsed are skipped. Recurrence rules are ignored; only the first
// occurrence is returned.
func Decode(r io.Reader, calendarID string) ([]models.EventRecord, error) {
	dec := ics.NewDecoder(r)

	var records []models.EventRecord
	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode ICS: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ics.CompEvent {
				continue
			}
			rec, err := parseEvent(comp, calendarID)
			if err != nil {
				logger.Warn("Skipping ICS event", "error", err)
				continue
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

func parseEvent(comp *ics.Component, calendarID string) (models.EventRecord, error) {
	rec := models.EventRecord{
		ID:          text(comp, ics.PropUID),
		Title:       text(comp, ics.PropSummary),
		CalendarID:  calendarID,
		Description: text(comp, ics.PropDescription),
		Location:    text(comp, ics.PropLocation),
		OwnerName:   organizer(comp),
		EventType:   category(comp),
	}

	startProp := comp.Props.Get(ics.PropDateTimeStart)
	if startProp == nil {
		return rec, fmt.Errorf("event %q has no DTSTART", rec.ID)
	}
	start, err := dateTime(startProp)
	if err != nil {
		return rec, fmt.Errorf("event %q: parse start time: %w", rec.ID, err)
	}

	end := start.Add(defaultDuration)
	if prop := comp.Props.Get(ics.PropDateTimeEnd); prop != nil {
		end, err = dateTime(prop)
		if err != nil {
			return rec, fmt.Errorf("event %q: parse end time: %w", rec.ID, err)
		}
	}

	rec.StartDateTime = utils.FormatNaiveTimestamp(start)
	rec.EndDateTime = utils.FormatNaiveTimestamp(end)
	return rec, nil
}

func text(comp *ics.Component, name string) string {
	if prop := comp.Props.Get(name); prop != nil {
		return prop.Value
	}
	return ""
}

// organizer prefers the CN parameter and falls back to the address.
func organizer(comp *ics.Component) string {
	prop := comp.Props.Get(ics.PropOrganizer)
	if prop == nil {
		return ""
	}
	if cn := prop.Params.Get("CN"); cn != "" {
		return cn
	}
	return strings.TrimPrefix(prop.Value, "mailto:")
}

// category maps the first CATEGORIES value to the event type.
func category(comp *ics.Component) string {
	first, _, _ := strings.Cut(text(comp, ics.PropCategories), ",")
	if first = strings.TrimSpace(first); first != "" {
		return first
	}
	return constants.DefaultEventType
}

// dateTime returns the wall-clock time of a DTSTART/DTEND value in local
// time. Floating and date-only values are taken as local as written.
func dateTime(prop *ics.Prop) (time.Time, error) {
	if t, err := prop.DateTime(time.Local); err == nil {
		return t.In(time.Local), nil
	}
	if t, err := time.ParseInLocation("20060102T150405", prop.Value, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation("20060102", prop.Value, time.Local)
}
