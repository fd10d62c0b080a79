package models

import (
	"testing"
	"time"
)

func TestNewReminder(t *testing.T) {
	r := NewReminder("  Call mom  ", "personal", "2026-01-15T09:30:00", "  bring up the trip ")

	if r.ID == "" {
		t.Fatal("NewReminder() produced an empty id")
	}
	if r.Title != "Call mom" {
		t.Errorf("title = %q, want %q", r.Title, "Call mom")
	}
	if r.Notes != "bring up the trip" {
		t.Errorf("notes = %q, want %q", r.Notes, "bring up the trip")
	}
	if r.Status != StatusUpcoming {
		t.Errorf("status = %q, want %q", r.Status, StatusUpcoming)
	}
	if r.AlertedAt != nil {
		t.Errorf("alertedAt = %v, want nil", *r.AlertedAt)
	}
	if _, err := time.Parse(time.RFC3339, r.CreatedAt); err != nil {
		t.Errorf("created_at %q is not RFC3339: %v", r.CreatedAt, err)
	}

	other := NewReminder("Call mom", "personal", "2026-01-15T09:30:00", "")
	if other.ID == r.ID {
		t.Errorf("two reminders share id %q", r.ID)
	}
}

func TestReminder_Validate(t *testing.T) {
	tests := []struct {
		name     string
		reminder Reminder
		wantErr  bool
	}{
		{
			name: "valid upcoming reminder",
			reminder: Reminder{
				ID:       "test-id",
				Title:    "Water the plants",
				DateTime: "2026-01-15T09:30:00",
				Status:   StatusUpcoming,
			},
			wantErr: false,
		},
		{
			name: "empty title",
			reminder: Reminder{
				ID:       "test-id",
				Title:    "   ",
				DateTime: "2026-01-15T09:30:00",
				Status:   StatusUpcoming,
			},
			wantErr: true,
		},
		{
			name: "empty datetime",
			reminder: Reminder{
				ID:     "test-id",
				Title:  "Water the plants",
				Status: StatusUpcoming,
			},
			wantErr: true,
		},
		{
			name: "malformed datetime",
			reminder: Reminder{
				ID:       "test-id",
				Title:    "Water the plants",
				DateTime: "2026/01/15 09:30",
				Status:   StatusUpcoming,
			},
			wantErr: true,
		},
		{
			name: "unknown status",
			reminder: Reminder{
				ID:       "test-id",
				Title:    "Water the plants",
				DateTime: "2026-01-15T09:30:00",
				Status:   Status("pending"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reminder.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Reminder.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReminder_Due(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		datetime string
		want     bool
	}{
		{"in the past", "2026-01-15T08:00:00", true},
		{"exactly now", "2026-01-15T10:00:00", true},
		{"in the future", "2026-01-15T12:00:00", false},
		{"empty datetime", "", false},
		{"unparseable datetime", "soon", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reminder{Title: "x", DateTime: tt.datetime, Status: StatusUpcoming}
			if got := r.Due(now); got != tt.want {
				t.Errorf("Due() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActive_SortsAscending(t *testing.T) {
	reminders := []Reminder{
		{ID: "a", Title: "later", DateTime: "2026-01-15T10:00:00", Status: StatusUpcoming},
		{ID: "b", Title: "sooner", DateTime: "2026-01-15T08:00:00", Status: StatusUpcoming},
		{ID: "c", Title: "done", DateTime: "2026-01-15T07:00:00", Status: StatusCompleted},
	}

	active := Active(reminders)
	if len(active) != 2 {
		t.Fatalf("Active() returned %d reminders, want 2", len(active))
	}
	if active[0].ID != "b" || active[1].ID != "a" {
		t.Errorf("Active() order = [%s %s], want [b a]", active[0].ID, active[1].ID)
	}
}

func TestHistory_FilterAndOrder(t *testing.T) {
	reminders := []Reminder{
		{ID: "a", Title: "old done", DateTime: "2026-01-10T10:00:00", Status: StatusCompleted},
		{ID: "b", Title: "new done", DateTime: "2026-01-14T10:00:00", Status: StatusCompleted},
		{ID: "c", Title: "missed", DateTime: "2026-01-12T10:00:00", Status: StatusMissed},
	}

	completed := History(reminders, FilterCompleted)
	if len(completed) != 2 {
		t.Fatalf("History(completed) returned %d reminders, want 2", len(completed))
	}
	if completed[0].ID != "b" || completed[1].ID != "a" {
		t.Errorf("History(completed) order = [%s %s], want [b a]", completed[0].ID, completed[1].ID)
	}

	all := History(reminders, FilterAll)
	if len(all) != 3 {
		t.Fatalf("History(all) returned %d reminders, want 3", len(all))
	}
	if all[0].ID != "b" || all[1].ID != "c" || all[2].ID != "a" {
		t.Errorf("History(all) order = [%s %s %s], want [b c a]", all[0].ID, all[1].ID, all[2].ID)
	}
}

func TestHistory_FallsBackToCreatedAt(t *testing.T) {
	reminders := []Reminder{
		{ID: "dated", Title: "x", DateTime: "2026-01-10T10:00:00", Status: StatusMissed},
		{ID: "undated", Title: "y", CreatedAt: "2026-01-12T10:00:00Z", Status: StatusMissed},
	}

	got := History(reminders, FilterAll)
	if got[0].ID != "undated" {
		t.Errorf("History() ordered %q first, want the later created_at entry first", got[0].ID)
	}
}

func TestParseFilter(t *testing.T) {
	for _, s := range []string{"", "all", "upcoming", "missed", "Completed", " missed "} {
		if _, err := ParseFilter(s); err != nil {
			t.Errorf("ParseFilter(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := ParseFilter("done"); err == nil {
		t.Error("ParseFilter(\"done\") expected an error")
	}
	if f, _ := ParseFilter(" missed "); f != FilterMissed {
		t.Errorf("ParseFilter(\" missed \") = %q, want %q", f, FilterMissed)
	}
}
