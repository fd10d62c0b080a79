package constants

// SessionState represents the current state of the TUI application
type SessionState int

// Meridiem represents the AM/PM half of a 12-hour clock time
type Meridiem string

const (
	AppName           = "nudge"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/nudge/nudge.json"

	// WatchLockfileName is the lockfile that guards against a second
	// concurrent watch process firing duplicate alarms.
	WatchLockfileName = "nudge-watch.lock"

	// Notification constants
	NotificationDurationMs = 5000

	// Meridiem constants
	MeridiemAM Meridiem = "AM"
	MeridiemPM Meridiem = "PM"

	// Session States
	StateClock SessionState = iota
	StateActive
	StateHistory
	StateAdd
)

// CategoryMenu is the fixed set of categories offered by the add form. The
// category field itself stays free text so records from older versions (or
// hand-edited stores) keep whatever label they carry.
var CategoryMenu = []string{
	"personal",
	"work",
	"health",
	"study",
	"errand",
}
