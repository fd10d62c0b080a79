// Package engine owns the in-memory reminder collection and drives its
// lifecycle: time-based upcoming->missed transitions, explicit completion
// and deletion, and persistence after every mutation.
package engine

import (
	"time"

	"github.com/julianstephens/nudge/internal/alarm"
	"github.com/julianstephens/nudge/internal/logger"
	"github.com/julianstephens/nudge/internal/models"
	"github.com/julianstephens/nudge/internal/storage"
)

// Service wraps the reminder collection with its storage and alarm
// collaborators. It is not safe for concurrent use; both the TUI and the
// watch loop drive it from a single goroutine.
type Service struct {
	store     storage.Provider
	alarm     alarm.Trigger
	reminders []models.Reminder
}

func New(store storage.Provider, trigger alarm.Trigger) *Service {
	return &Service{
		store: store,
		alarm: trigger,
	}
}

// Load pulls the persisted collection into memory. Storage degradation
// (missing or corrupt data) surfaces as an empty collection, not an error.
func (s *Service) Load() error {
	if err := s.store.Load(); err != nil {
		return err
	}

	reminders, err := s.store.GetAllReminders()
	if err != nil {
		return err
	}
	s.reminders = reminders
	return nil
}

// Reminders returns a copy of the current collection.
func (s *Service) Reminders() []models.Reminder {
	out := make([]models.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// Active returns the upcoming reminders, soonest first.
func (s *Service) Active() []models.Reminder {
	return models.Active(s.reminders)
}

// History returns reminders matching the filter, newest first.
func (s *Service) History(filter models.Filter) []models.Reminder {
	return models.History(s.reminders, filter)
}

// Add appends a reminder and persists.
func (s *Service) Add(r models.Reminder) {
	s.reminders = append(s.reminders, r)
	s.persist()
}

// Evaluate scans for upcoming reminders whose scheduled time has passed,
// marks each missed, stamps its alerted-at instant, and fires the alarm
// exactly once per reminder. It reports whether anything changed. Missed and
// completed reminders are terminal here, so a second call is a no-op.
func (s *Service) Evaluate(now time.Time) bool {
	changed := false

	for i := range s.reminders {
		r := &s.reminders[i]
		if r.Status != models.StatusUpcoming || r.AlertedAt != nil {
			continue
		}
		if !r.Due(now) {
			continue
		}

		r.Status = models.StatusMissed
		alertedAt := now.Format(time.RFC3339)
		r.AlertedAt = &alertedAt

		logger.Info("Reminder missed", "id", r.ID, "title", r.Title, "scheduled", r.DateTime)
		s.alarm.Trigger(*r)
		changed = true
	}

	if changed {
		s.persist()
	}
	return changed
}

// MarkDone sets the reminder with the given id to completed, regardless of
// its current status, and reports whether a reminder matched. Unknown ids
// are a no-op.
func (s *Service) MarkDone(id string) bool {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders[i].Status = models.StatusCompleted
			s.persist()
			return true
		}
	}
	return false
}

// Delete removes the reminder with the given id and reports whether one
// matched. Unknown ids are a no-op.
func (s *Service) Delete(id string) bool {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// persist writes the whole collection. Failures are logged and the session
// continues on the in-memory state.
func (s *Service) persist() {
	if err := s.store.ReplaceAll(s.reminders); err != nil {
		logger.Error("Failed to persist reminders", "error", err)
	}
}
