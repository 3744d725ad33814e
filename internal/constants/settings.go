package constants

const (
	// Working hours defaults
	DefaultWorkStart   = "08:00"
	DefaultWorkEnd     = "18:00"
	DefaultSlotMinutes = 30
	DefaultView        = "month"

	// Default calendar, present when the configuration lists none
	DefaultCalendarID    = "myEvents"
	DefaultCalendarName  = "My Events"
	DefaultCalendarColor = "#1589EE"
)
