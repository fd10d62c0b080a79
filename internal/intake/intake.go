// Package intake validates and normalizes user-submitted reminder fields
// into a canonical local date-time. Validation is ordered and the first
// failing rule wins; callers surface exactly one message at a time.
package intake

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/nudge/internal/constants"
	"github.com/julianstephens/nudge/internal/models"
	"github.com/julianstephens/nudge/internal/utils"
)

var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrMissingDateTime = errors.New("date and time are required")
	ErrInvalidTime     = errors.New("time must be numeric HH:MM")
	ErrInvalidDateTime = errors.New("invalid date/time")
)

// PastWarning is the non-blocking notice attached to submissions whose
// scheduled time already passed.
const PastWarning = "scheduled time is in the past; the reminder will be recorded as missed"

// Fields carries the raw form input.
type Fields struct {
	Title    string
	Category string
	Date     string // YYYY-MM-DD
	Time     string // 12-hour H:MM or HH:MM
	Meridiem string // AM/PM, defaults to AM
	Notes    string
}

// Canonicalize validates the date/time fields and combines them into the
// canonical stored form (YYYY-MM-DDTHH:MM:SS).
func (f Fields) Canonicalize() (string, error) {
	if f.Date == "" || strings.TrimSpace(f.Time) == "" {
		return "", ErrMissingDateTime
	}

	hour, minute, err := utils.ParseClockTime(f.Time)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	meridiem, err := utils.ParseMeridiem(f.Meridiem)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	datetime := fmt.Sprintf("%sT%02d:%02d:00", f.Date, utils.To24Hour(hour, meridiem), minute)
	if _, err := utils.ParseDateTime(datetime); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidDateTime, datetime)
	}

	return datetime, nil
}

// Submit validates the fields and builds a new upcoming reminder. The
// returned warning, when non-empty, should be surfaced without blocking the
// submission.
func Submit(f Fields, now time.Time) (models.Reminder, string, error) {
	if strings.TrimSpace(f.Title) == "" {
		return models.Reminder{}, "", ErrEmptyTitle
	}

	datetime, err := f.Canonicalize()
	if err != nil {
		return models.Reminder{}, "", err
	}

	var warning string
	if when, err := utils.ParseDateTime(datetime); err == nil {
		if now.Sub(when) > constants.PastGrace {
			warning = PastWarning
		}
	}

	return models.NewReminder(f.Title, f.Category, datetime, f.Notes), warning, nil
}
