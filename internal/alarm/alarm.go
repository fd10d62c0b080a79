// Package alarm raises the sound and notification for a reminder whose time
// has arrived. Both effects are independent and best effort: a failure is
// logged and never reaches the status engine.
package alarm

import (
	"fmt"
	"os"

	"github.com/julianstephens/nudge/internal/logger"
	"github.com/julianstephens/nudge/internal/models"
	"github.com/julianstephens/nudge/internal/notifier"
)

// Trigger is what the status engine fires when a reminder becomes due.
type Trigger interface {
	Trigger(r models.Reminder)
}

type Alarm struct {
	notifier *notifier.Notifier
}

func New() *Alarm {
	return &Alarm{
		notifier: notifier.New(),
	}
}

// Trigger fires the tone and the notification without waiting on either.
func (a *Alarm) Trigger(r models.Reminder) {
	go func() {
		if err := playTone(); err != nil {
			logger.Warn("Alarm tone failed, falling back to terminal bell", "reminder", r.ID, "error", err)
			fmt.Fprint(os.Stderr, "\a")
		}
	}()

	go func() {
		summary := fmt.Sprintf("Reminder: %s", r.Title)
		body := r.DateTime
		if r.Category != "" {
			body = fmt.Sprintf("[%s] %s", r.Category, r.DateTime)
		}
		if err := a.notifier.Notify(summary, body); err != nil {
			logger.Warn("Desktop notification failed", "reminder", r.ID, "error", err)
			fmt.Fprintf(os.Stderr, "\n*** %s ***\n", summary)
		}
	}()
}
