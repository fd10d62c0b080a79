package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/julianstephens/nudge/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nudge.json")
	s := NewJSONStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return s
}

func alerted(ts string) *string { return &ts }

func TestJSONStore_RoundTrip(t *testing.T) {
	s := newTestJSONStore(t)

	saved := []models.Reminder{
		{
			ID:        "1700000000000-ab12cd34",
			Title:     "Call mom",
			Category:  "personal",
			DateTime:  "2026-01-15T09:30:00",
			Notes:     "ask about the trip",
			CreatedAt: "2026-01-10T08:00:00Z",
			Status:    models.StatusUpcoming,
		},
		{
			ID:        "1700000000001-ef56ab78",
			Title:     "Standup",
			Category:  "work",
			DateTime:  "2026-01-14T10:00:00",
			CreatedAt: "2026-01-10T08:01:00Z",
			Status:    models.StatusMissed,
			AlertedAt: alerted("2026-01-14T10:00:03Z"),
		},
	}
	if err := s.ReplaceAll(saved); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}

	// Reload from disk through a fresh store.
	fresh := NewJSONStore(s.GetConfigPath())
	if err := fresh.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	loaded, err := fresh.GetAllReminders()
	if err != nil {
		t.Fatalf("GetAllReminders() error = %v", err)
	}

	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, saved)
	}
}

func TestJSONStore_LoadBackfillsLegacyStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nudge.json")
	legacy := `[{"id":"r1","title":"Old record","datetime":"2024-01-01T09:00:00","created_at":"2024-01-01T08:00:00Z"}]`
	if err := os.WriteFile(path, []byte(legacy), 0600); err != nil {
		t.Fatal(err)
	}

	s := NewJSONStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	reminders, err := s.GetAllReminders()
	if err != nil {
		t.Fatalf("GetAllReminders() error = %v", err)
	}
	if len(reminders) != 1 {
		t.Fatalf("got %d reminders, want 1", len(reminders))
	}
	if reminders[0].Status != models.StatusUpcoming {
		t.Errorf("legacy status = %q, want %q", reminders[0].Status, models.StatusUpcoming)
	}
}

func TestJSONStore_LoadDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
		write   bool
	}{
		{"missing file", "", false},
		{"corrupt payload", "{not json", true},
		{"not an array", `{"id":"x"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nudge.json")
			if tt.write {
				if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
					t.Fatal(err)
				}
			}

			s := NewJSONStore(path)
			if err := s.Load(); err != nil {
				t.Fatalf("Load() error = %v, want graceful degrade", err)
			}

			reminders, err := s.GetAllReminders()
			if err != nil {
				t.Fatalf("GetAllReminders() error = %v", err)
			}
			if len(reminders) != 0 {
				t.Errorf("got %d reminders, want empty collection", len(reminders))
			}
		})
	}
}

func TestJSONStore_CRUD(t *testing.T) {
	s := newTestJSONStore(t)

	r := models.NewReminder("Water plants", "home", "2026-02-01T08:00:00", "")
	if err := s.AddReminder(r); err != nil {
		t.Fatalf("AddReminder() error = %v", err)
	}

	got, err := s.GetReminder(r.ID)
	if err != nil {
		t.Fatalf("GetReminder() error = %v", err)
	}
	if got.Title != "Water plants" {
		t.Errorf("title = %q, want %q", got.Title, "Water plants")
	}

	got.Status = models.StatusCompleted
	if err := s.UpdateReminder(got); err != nil {
		t.Fatalf("UpdateReminder() error = %v", err)
	}
	updated, _ := s.GetReminder(r.ID)
	if updated.Status != models.StatusCompleted {
		t.Errorf("status = %q, want %q", updated.Status, models.StatusCompleted)
	}

	if err := s.DeleteReminder(r.ID); err != nil {
		t.Fatalf("DeleteReminder() error = %v", err)
	}
	if _, err := s.GetReminder(r.ID); err == nil {
		t.Error("GetReminder() after delete expected an error")
	}
	if err := s.DeleteReminder(r.ID); err == nil {
		t.Error("DeleteReminder() on unknown id expected an error")
	}
}

func TestJSONStore_InitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nudge.json")
	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("Init() on an existing store expected an error")
	}
}

func TestNewProvider(t *testing.T) {
	if _, ok := NewProvider("/tmp/x/nudge.json").(*JSONStore); !ok {
		t.Error("NewProvider(.json) did not select the JSON backend")
	}
	if _, ok := NewProvider("/tmp/x/nudge.db").(*SQLiteStore); !ok {
		t.Error("NewProvider(.db) did not select the SQLite backend")
	}
}
