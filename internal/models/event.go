package models

import "time"

// EventRecord is an event as returned by an event source. Timestamps are
// naive local wall-clock strings.
type EventRecord struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	StartDateTime string `json:"startDateTime"`
	EndDateTime   string `json:"endDateTime"`
	CalendarID    string `json:"calendarId"`
	Description   string `json:"description,omitempty"`
	Location      string `json:"location,omitempty"`
	OwnerName     string `json:"ownerName,omitempty"`
	EventType     string `json:"eventType"`
}

// Event is a parsed event held by the view layer for one loaded range.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	CalendarID  string    `json:"calendarId"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	OwnerName   string    `json:"ownerName,omitempty"`
	EventType   string    `json:"eventType"`

	// Color is the display color snapshot taken from the calendar registry
	Color string `json:"color"`
}

// StartMinutes returns the event start as minutes from midnight.
func (e Event) StartMinutes() int {
	return e.Start.Hour()*60 + e.Start.Minute()
}
