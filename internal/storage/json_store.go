package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/nudge/internal/logger"
	"github.com/julianstephens/nudge/internal/models"
)

// JSONStore persists the reminder collection as a single JSON array in one
// file. Every write serializes the whole collection; there is no partial or
// incremental persistence.
type JSONStore struct {
	path      string
	reminders []models.Reminder
	loaded    bool
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.reminders = []models.Reminder{}
	s.loaded = true
	s.save()
	return nil
}

// Load reads the stored blob. A missing file, unreadable file, or malformed
// payload degrades to an empty collection: storage failures never keep the
// user from their list. Records persisted by older versions without a status
// are back-filled to upcoming.
func (s *JSONStore) Load() error {
	s.reminders = []models.Reminder{}
	s.loaded = true

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read reminder store, starting empty", "path", s.path, "error", err)
		}
		return nil
	}

	var reminders []models.Reminder
	if err := json.Unmarshal(data, &reminders); err != nil {
		logger.Warn("Failed to parse reminder store, starting empty", "path", s.path, "error", err)
		return nil
	}

	for i := range reminders {
		if reminders[i].Status == "" {
			reminders[i].Status = models.StatusUpcoming
		}
	}

	s.reminders = reminders
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes the full collection. Write failures (e.g. disk full) are
// logged and dropped; the in-memory state stays authoritative for the
// session.
func (s *JSONStore) save() {
	data, err := json.MarshalIndent(s.reminders, "", "  ")
	if err != nil {
		logger.Error("Failed to serialize reminder store", "error", err)
		return
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		logger.Error("Failed to create config directory", "path", dir, "error", err)
		return
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		logger.Error("Failed to write reminder store", "path", s.path, "error", err)
	}
}

func (s *JSONStore) AddReminder(reminder models.Reminder) error {
	if !s.loaded {
		return fmt.Errorf("storage not loaded")
	}

	s.reminders = append(s.reminders, reminder)
	s.save()
	return nil
}

func (s *JSONStore) GetReminder(id string) (models.Reminder, error) {
	if !s.loaded {
		return models.Reminder{}, fmt.Errorf("storage not loaded")
	}

	for _, r := range s.reminders {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Reminder{}, fmt.Errorf("reminder not found: %s", id)
}

func (s *JSONStore) GetAllReminders() ([]models.Reminder, error) {
	if !s.loaded {
		return nil, fmt.Errorf("storage not loaded")
	}

	reminders := make([]models.Reminder, len(s.reminders))
	copy(reminders, s.reminders)
	return reminders, nil
}

func (s *JSONStore) UpdateReminder(reminder models.Reminder) error {
	if !s.loaded {
		return fmt.Errorf("storage not loaded")
	}

	for i := range s.reminders {
		if s.reminders[i].ID == reminder.ID {
			s.reminders[i] = reminder
			s.save()
			return nil
		}
	}
	return fmt.Errorf("reminder not found: %s", reminder.ID)
}

func (s *JSONStore) DeleteReminder(id string) error {
	if !s.loaded {
		return fmt.Errorf("storage not loaded")
	}

	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
			s.save()
			return nil
		}
	}
	return fmt.Errorf("reminder not found: %s", id)
}

func (s *JSONStore) ReplaceAll(reminders []models.Reminder) error {
	if !s.loaded {
		return fmt.Errorf("storage not loaded")
	}

	s.reminders = make([]models.Reminder, len(reminders))
	copy(s.reminders, reminders)
	s.save()
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
