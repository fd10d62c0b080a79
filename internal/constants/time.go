package constants

import "time"

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DateTimeFormat is the canonical naive local date-time format stored on
	// every reminder (YYYY-MM-DDTHH:MM:SS, no offset)
	DateTimeFormat = "2006-01-02T15:04:05"

	// ClockFormat and FullDateFormat drive the live clock readout
	ClockFormat    = "15:04:05"
	FullDateFormat = "Monday, January 2, 2006"

	// ClockInterval is the cadence of the live clock readout
	ClockInterval = time.Second

	// PollInterval is the cadence at which pending reminders are re-checked
	// against the wall clock. Alarms may lag their scheduled time by up to
	// this much.
	PollInterval = 5 * time.Second

	// PastGrace is how far in the past a submitted reminder may be before
	// intake warns that it will be recorded as missed.
	PastGrace = 60 * time.Second
)
