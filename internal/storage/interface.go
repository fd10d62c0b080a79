package storage

import "github.com/julianstephens/nudge/internal/models"

// Provider is the persistence surface shared by the JSON and SQLite
// backends. Load is tolerant: an absent or unreadable store yields an empty
// collection rather than an error, so the app always starts usable.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Reminders
	AddReminder(models.Reminder) error
	GetReminder(id string) (models.Reminder, error)
	GetAllReminders() ([]models.Reminder, error)
	UpdateReminder(models.Reminder) error
	DeleteReminder(id string) error

	// ReplaceAll persists the full collection in one write. The collection
	// is the unit of persistence; callers hand over the whole in-memory
	// state after every mutation.
	ReplaceAll([]models.Reminder) error

	// Utils
	GetConfigPath() string
}
