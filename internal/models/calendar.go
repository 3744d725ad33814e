package models

// Calendar is a named, colorable, independently visible grouping of events.
type Calendar struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"` // #RRGGBB
	Visible bool   `json:"visible"`
}

// TimeSlot is one row of a time-based grid.
type TimeSlot struct {
	Label               string `json:"label"` // HH:MM
	MinutesFromMidnight int    `json:"minutesFromMidnight"`
}
