package engine

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/nudge/internal/models"
	"github.com/julianstephens/nudge/internal/storage"
)

// countingTrigger records alarm firings per reminder id.
type countingTrigger struct {
	fired map[string]int
}

func newCountingTrigger() *countingTrigger {
	return &countingTrigger{fired: make(map[string]int)}
}

func (c *countingTrigger) Trigger(r models.Reminder) {
	c.fired[r.ID]++
}

func newTestService(t *testing.T) (*Service, *countingTrigger) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "nudge.json"))
	trigger := newCountingTrigger()
	svc := New(store, trigger)
	if err := svc.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return svc, trigger
}

func TestEvaluate_TransitionsDueReminders(t *testing.T) {
	svc, trigger := newTestService(t)
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.Local)

	due := models.NewReminder("due", "", "2026-01-15T08:00:00", "")
	future := models.NewReminder("future", "", "2026-01-15T12:00:00", "")
	svc.Add(due)
	svc.Add(future)

	if changed := svc.Evaluate(now); !changed {
		t.Fatal("Evaluate() = false, want true")
	}

	got := map[string]models.Reminder{}
	for _, r := range svc.Reminders() {
		got[r.ID] = r
	}

	if got[due.ID].Status != models.StatusMissed {
		t.Errorf("due reminder status = %q, want %q", got[due.ID].Status, models.StatusMissed)
	}
	if got[due.ID].AlertedAt == nil {
		t.Error("due reminder alertedAt is unset")
	}
	if got[future.ID].Status != models.StatusUpcoming {
		t.Errorf("future reminder status = %q, want %q", got[future.ID].Status, models.StatusUpcoming)
	}
	if trigger.fired[due.ID] != 1 {
		t.Errorf("alarm fired %d times for due reminder, want 1", trigger.fired[due.ID])
	}
	if trigger.fired[future.ID] != 0 {
		t.Errorf("alarm fired %d times for future reminder, want 0", trigger.fired[future.ID])
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	svc, trigger := newTestService(t)
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.Local)

	due := models.NewReminder("due", "", "2026-01-15T08:00:00", "")
	svc.Add(due)

	if !svc.Evaluate(now) {
		t.Fatal("first Evaluate() = false, want true")
	}
	if svc.Evaluate(now.Add(time.Minute)) {
		t.Error("second Evaluate() = true, want false")
	}
	if svc.Evaluate(now.Add(time.Hour)) {
		t.Error("third Evaluate() = true, want false")
	}
	if trigger.fired[due.ID] != 1 {
		t.Errorf("alarm fired %d times, want exactly 1", trigger.fired[due.ID])
	}
}

func TestEvaluate_SkipsCompleted(t *testing.T) {
	svc, trigger := newTestService(t)
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.Local)

	r := models.NewReminder("done early", "", "2026-01-15T08:00:00", "")
	svc.Add(r)
	svc.MarkDone(r.ID)

	if svc.Evaluate(now) {
		t.Error("Evaluate() mutated a completed reminder")
	}
	if trigger.fired[r.ID] != 0 {
		t.Errorf("alarm fired %d times for completed reminder, want 0", trigger.fired[r.ID])
	}
}

func TestMarkDone(t *testing.T) {
	svc, _ := newTestService(t)

	a := models.NewReminder("a", "", "2026-01-15T08:00:00", "")
	b := models.NewReminder("b", "", "2026-01-15T09:00:00", "")
	svc.Add(a)
	svc.Add(b)

	if svc.MarkDone("no-such-id") {
		t.Error("MarkDone(unknown) = true, want false")
	}
	for _, r := range svc.Reminders() {
		if r.Status != models.StatusUpcoming {
			t.Errorf("MarkDone(unknown) mutated reminder %s", r.ID)
		}
	}

	if !svc.MarkDone(a.ID) {
		t.Fatal("MarkDone(known) = false, want true")
	}
	for _, r := range svc.Reminders() {
		switch r.ID {
		case a.ID:
			if r.Status != models.StatusCompleted {
				t.Errorf("marked reminder status = %q, want %q", r.Status, models.StatusCompleted)
			}
		case b.ID:
			if r.Status != models.StatusUpcoming {
				t.Errorf("untouched reminder status = %q, want %q", r.Status, models.StatusUpcoming)
			}
		}
	}
}

func TestMarkDone_AllowedFromMissed(t *testing.T) {
	svc, _ := newTestService(t)
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.Local)

	r := models.NewReminder("missed", "", "2026-01-15T08:00:00", "")
	svc.Add(r)
	svc.Evaluate(now)

	if !svc.MarkDone(r.ID) {
		t.Fatal("MarkDone() on a missed reminder = false, want true")
	}
	if got := svc.Reminders()[0].Status; got != models.StatusCompleted {
		t.Errorf("status = %q, want %q", got, models.StatusCompleted)
	}
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)

	a := models.NewReminder("a", "", "2026-01-15T08:00:00", "")
	b := models.NewReminder("b", "", "2026-01-15T09:00:00", "")
	svc.Add(a)
	svc.Add(b)

	if svc.Delete("no-such-id") {
		t.Error("Delete(unknown) = true, want false")
	}
	if len(svc.Reminders()) != 2 {
		t.Fatalf("Delete(unknown) changed collection length to %d", len(svc.Reminders()))
	}

	if !svc.Delete(a.ID) {
		t.Fatal("Delete(known) = false, want true")
	}
	remaining := svc.Reminders()
	if len(remaining) != 1 {
		t.Fatalf("collection length = %d after delete, want 1", len(remaining))
	}
	if remaining[0].ID != b.ID {
		t.Errorf("remaining reminder = %s, want %s", remaining[0].ID, b.ID)
	}
}

func TestMutationsPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nudge.json")
	store := storage.NewJSONStore(path)
	svc := New(store, newCountingTrigger())
	if err := svc.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	r := models.NewReminder("persisted", "", "2026-01-15T08:00:00", "")
	svc.Add(r)
	svc.Evaluate(time.Date(2026, 1, 15, 10, 0, 0, 0, time.Local))

	// A fresh service over the same file sees the missed transition.
	reloaded := New(storage.NewJSONStore(path), newCountingTrigger())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload error = %v", err)
	}
	got := reloaded.Reminders()
	if len(got) != 1 {
		t.Fatalf("reloaded %d reminders, want 1", len(got))
	}
	if got[0].Status != models.StatusMissed {
		t.Errorf("reloaded status = %q, want %q", got[0].Status, models.StatusMissed)
	}
	if got[0].AlertedAt == nil {
		t.Error("reloaded alertedAt is unset")
	}
}
