package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/julianstephens/nudge/internal/engine"
	"github.com/julianstephens/nudge/internal/models"
	"github.com/julianstephens/nudge/internal/storage"
)

// Context is the shared state handed to every command.
type Context struct {
	Store  storage.Provider
	Engine *engine.Service
}

// ConfigDir returns the directory holding the store, logs, and lockfiles.
func (c *Context) ConfigDir() string {
	return filepath.Dir(c.Store.GetConfigPath())
}

// PrintReminderTable renders reminders as a fixed-width table.
func PrintReminderTable(reminders []models.Reminder, showStatus bool) {
	if showStatus {
		fmt.Printf("%-22s %-30s %-20s %-10s %-10s\n", "ID", "Title", "When", "Category", "Status")
		fmt.Println(strings.Repeat("-", 98))
	} else {
		fmt.Printf("%-22s %-30s %-20s %-10s\n", "ID", "Title", "When", "Category")
		fmt.Println(strings.Repeat("-", 87))
	}

	for _, r := range reminders {
		title := r.Title
		if len(title) > 28 {
			title = title[:25] + "..."
		}
		when := strings.Replace(r.DateTime, "T", " ", 1)

		if showStatus {
			fmt.Printf("%-22s %-30s %-20s %-10s %-10s\n", r.ID, title, when, r.Category, r.Status)
		} else {
			fmt.Printf("%-22s %-30s %-20s %-10s\n", r.ID, title, when, r.Category)
		}
	}
}
