package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/nudge/internal/constants"
)

// Status is the lifecycle state of a reminder. The automatic engine only
// ever moves upcoming -> missed; missed and completed are terminal for it.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusMissed    Status = "missed"
	StatusCompleted Status = "completed"
)

// Filter selects a subset of reminders for the history view.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterUpcoming  Filter = "upcoming"
	FilterMissed    Filter = "missed"
	FilterCompleted Filter = "completed"
)

// ParseFilter normalizes a filter string, defaulting to FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterUpcoming:
		return FilterUpcoming, nil
	case FilterMissed:
		return FilterMissed, nil
	case FilterCompleted:
		return FilterCompleted, nil
	default:
		return "", fmt.Errorf("invalid filter: %s (must be all, upcoming, missed, or completed)", s)
	}
}

type Reminder struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Category  string  `json:"category,omitempty"`
	DateTime  string  `json:"datetime"` // YYYY-MM-DDTHH:MM:SS, naive local time
	Notes     string  `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"` // RFC3339
	Status    Status  `json:"status"`
	AlertedAt *string `json:"alerted_at,omitempty"` // RFC3339, set once when the alarm fires
}

// NewReminder constructs a reminder from user-supplied fields, assigning an
// id and creation timestamp. Title and notes are trimmed; the id combines a
// millisecond time prefix with a random suffix.
func NewReminder(title, category, datetime, notes string) Reminder {
	now := time.Now()
	return Reminder{
		ID:        fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8]),
		Title:     strings.TrimSpace(title),
		Category:  category,
		DateTime:  datetime,
		Notes:     strings.TrimSpace(notes),
		CreatedAt: now.Format(time.RFC3339),
		Status:    StatusUpcoming,
	}
}

func (r *Reminder) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("reminder title cannot be empty")
	}

	if r.DateTime == "" {
		return fmt.Errorf("reminder date-time cannot be empty")
	}

	if _, err := time.ParseInLocation(constants.DateTimeFormat, r.DateTime, time.Local); err != nil {
		return fmt.Errorf("invalid date-time format (expected YYYY-MM-DDTHH:MM:SS): %w", err)
	}

	switch r.Status {
	case StatusUpcoming, StatusMissed, StatusCompleted:
	default:
		return fmt.Errorf("invalid status: %s", r.Status)
	}

	return nil
}

// When returns the reminder's scheduled instant in local time. ok is false
// when the datetime field is empty or unparseable.
func (r *Reminder) When() (time.Time, bool) {
	if r.DateTime == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(constants.DateTimeFormat, r.DateTime, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Due reports whether the reminder's scheduled time is at or before now.
func (r *Reminder) Due(now time.Time) bool {
	t, ok := r.When()
	if !ok {
		return false
	}
	return !t.After(now)
}

// sortKey is the instant used to order the history view: scheduled time,
// falling back to creation time, then the Unix epoch.
func (r *Reminder) sortKey() time.Time {
	if t, ok := r.When(); ok {
		return t
	}
	if t, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
		return t
	}
	return time.Unix(0, 0)
}

// Active returns the upcoming reminders sorted soonest-first.
func Active(reminders []Reminder) []Reminder {
	var active []Reminder
	for _, r := range reminders {
		if r.Status == StatusUpcoming {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].sortKey().Before(active[j].sortKey())
	})
	return active
}

// History returns reminders matching the filter, newest-first.
func History(reminders []Reminder, filter Filter) []Reminder {
	var matched []Reminder
	for _, r := range reminders {
		if filter == FilterAll || Status(filter) == r.Status {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[j].sortKey().Before(matched[i].sortKey())
	})
	return matched
}
