package constants

const (
	AppName            = "calgrid"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/calgrid/config.yaml"
	DefaultStorePath   = "~/.config/calgrid/calgrid.db"
	Version            = "v0.3.0"

	// EnvConnectionString overrides the postgres connection string from the keyring
	EnvConnectionString = "CALGRID_DB_CONNECTION"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// TimestampFormat is the naive local wall-clock layout exchanged with event sources
	TimestampFormat = "2006-01-02T15:04:05"

	// DetailTimestampFormat is the layout of start/end times in the event detail sheet
	DetailTimestampFormat = "02/01/2006 15:04"

	// FallbackColor is used for events whose calendar is not registered
	FallbackColor = "#1589EE"

	// DefaultEventType is used when a record carries no event type
	DefaultEventType = "Event"

	// Source types
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
	SourceICS      = "ics"
)
