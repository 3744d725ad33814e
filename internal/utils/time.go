package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/calgrid/internal/constants"
	apperrors "github.com/julianstephens/calgrid/internal/errors"
)

// genericLayouts are tried in order when a timestamp does not match
// constants.TimestampFormat. Zoned layouts keep their wall clock.
var genericLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	constants.DateFormat,
	constants.DetailTimestampFormat,
	"02/01/2006",
	time.RFC1123Z,
	time.RFC1123,
	"Jan 2, 2006 15:04",
	"Jan 2, 2006",
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(strings.TrimSpace(timeStr))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidTime, timeStr)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders minutes from midnight as zero-padded HH:MM.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// ParseDate parses a date string (YYYY-MM-DD) as local midnight.
func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(constants.DateFormat, strings.TrimSpace(dateStr), time.Local)
}

// ParseNaiveTimestamp parses a source timestamp (YYYY-MM-DDTHH:MM:SS) as
// local wall-clock time. No zone shift is applied.
func ParseNaiveTimestamp(value string) (time.Time, error) {
	return time.ParseInLocation(constants.TimestampFormat, strings.TrimSpace(value), time.Local)
}

// ParseGenericTimestamp is the lenient fallback for timestamps that are not in
// the source layout. Zoned values keep their wall clock and are re-homed in
// time.Local.
func ParseGenericTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range genericLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrNoParse, value)
}

// FormatNaiveTimestamp renders t in the source timestamp layout.
func FormatNaiveTimestamp(t time.Time) string {
	return t.Format(constants.TimestampFormat)
}

// DateOnly truncates t to midnight, keeping its location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day (year, month, day).
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MondayIndex maps a Sunday-based weekday onto a Monday-based column index (Mon=0 .. Sun=6).
func MondayIndex(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

// MondayOf returns the Monday of the week containing t, at midnight.
func MondayOf(t time.Time) time.Time {
	return DateOnly(t).AddDate(0, 0, -MondayIndex(t.Weekday()))
}

// FirstOfMonth returns the first day of t's month, at midnight.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// LastOfMonth returns the last day of t's month, at midnight.
func LastOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}
