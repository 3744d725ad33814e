package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	// ErrUnknownCalendar marks a lookup against a calendar id the registry does not hold.
	// Lookups never return it; it only tags log lines.
	ErrUnknownCalendar = stderrors.New("unknown calendar")
	// ErrInvalidTime is returned for HH:MM strings that do not parse
	ErrInvalidTime = stderrors.New("invalid time of day")
	// ErrNoParse is returned when a timestamp fails both strict and generic parsing
	ErrNoParse = stderrors.New("unparseable timestamp")
)

// FetchError is a transport or remote failure of the event source.
type FetchError struct {
	Start string
	End   string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch events %s..%s: %v", e.Start, e.End, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// MalformedTimestampError reports a record timestamp that did not match the
// strict naive-local layout.
type MalformedTimestampError struct {
	RecordID string
	Field    string
	Value    string
	Err      error
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("record %s: malformed %s %q: %v", e.RecordID, e.Field, e.Value, e.Err)
}

func (e *MalformedTimestampError) Unwrap() error {
	return e.Err
}
