package engine

import (
	"time"

	"github.com/julianstephens/calgrid/internal/constants"
	apperrors "github.com/julianstephens/calgrid/internal/errors"
	"github.com/julianstephens/calgrid/internal/logger"
	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/utils"
)

// ColorResolver supplies the display color snapshot for an event's calendar.
type ColorResolver interface {
	ResolveColor(calendarID string) string
}

// ToEvents parses source records into events. A timestamp outside the strict
// naive layout falls back to generic parsing; a record whose timestamps fail
// both is skipped so one bad record does not abort the batch.
func ToEvents(records []models.EventRecord, colors ColorResolver) []models.Event {
	events := make([]models.Event, 0, len(records))
	for _, rec := range records {
		start, ok := parseField(rec, "startDateTime", rec.StartDateTime)
		if !ok {
			continue
		}
		end, ok := parseField(rec, "endDateTime", rec.EndDateTime)
		if !ok {
			continue
		}
		eventType := rec.EventType
		if eventType == "" {
			eventType = constants.DefaultEventType
		}
		events = append(events, models.Event{
			ID:          rec.ID,
			Title:       rec.Title,
			Start:       start,
			End:         end,
			CalendarID:  rec.CalendarID,
			Description: rec.Description,
			Location:    rec.Location,
			OwnerName:   rec.OwnerName,
			EventType:   eventType,
			Color:       colors.ResolveColor(rec.CalendarID),
		})
	}
	return events
}

func parseField(rec models.EventRecord, field, value string) (time.Time, bool) {
	t, err := utils.ParseNaiveTimestamp(value)
	if err == nil {
		return t, true
	}
	malformed := &apperrors.MalformedTimestampError{RecordID: rec.ID, Field: field, Value: value, Err: err}
	t, err = utils.ParseGenericTimestamp(value)
	if err != nil {
		logger.Error("Skipping event record", "error", malformed, "fallback", err)
		return t, false
	}
	logger.Warn("Parsed timestamp with generic fallback", "error", malformed, "parsed", utils.FormatNaiveTimestamp(t))
	return t, true
}
