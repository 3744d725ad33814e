package source

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/calgrid/internal/constants"
	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/utils"
)

var (
	ErrMissingCalendar = errors.New("event has no calendar id")
	ErrEndBeforeStart  = errors.New("event ends before it starts")
)

// Normalize prepares a record for storage: it assigns an id when missing,
// rewrites both timestamps in the naive YYYY-MM-DDTHH:MM:SS layout and
// defaults the event type.
func Normalize(rec models.EventRecord) (models.EventRecord, error) {
	if strings.TrimSpace(rec.CalendarID) == "" {
		return rec, ErrMissingCalendar
	}
	start, err := parseRecordTime(rec.StartDateTime)
	if err != nil {
		return rec, fmt.Errorf("start: %w", err)
	}
	end, err := parseRecordTime(rec.EndDateTime)
	if err != nil {
		return rec, fmt.Errorf("end: %w", err)
	}
	if end.Before(start) {
		return rec, ErrEndBeforeStart
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.EventType == "" {
		rec.EventType = constants.DefaultEventType
	}
	rec.StartDateTime = utils.FormatNaiveTimestamp(start)
	rec.EndDateTime = utils.FormatNaiveTimestamp(end)
	return rec, nil
}

func parseRecordTime(value string) (t time.Time, err error) {
	if t, err = utils.ParseNaiveTimestamp(value); err == nil {
		return t, nil
	}
	return utils.ParseGenericTimestamp(value)
}

// InRange reports whether rec starts on a day within startDate..endDate.
func InRange(rec models.EventRecord, startDate, endDate string) bool {
	if len(rec.StartDateTime) < len(constants.DateFormat) {
		return false
	}
	day := rec.StartDateTime[:len(constants.DateFormat)]
	return day >= startDate && day <= endDate
}
