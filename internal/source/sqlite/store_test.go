package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/source"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "nested", "calgrid.db"))
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func record(id, start, end string) models.EventRecord {
	return models.EventRecord{ID: id, Title: "Event " + id, StartDateTime: start, EndDateTime: end, CalendarID: "myEvents"}
}

func TestLoadUninitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(context.Background()); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Load() error = %v, want ErrNotInitialized", err)
	}
}

func TestInitThenLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "calgrid.db")

	first := NewStore(path)
	if err := first.Init(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := first.AddEvent(ctx, record("a", "2025-03-14T09:00:00", "2025-03-14T10:00:00")); err != nil {
		t.Fatal(err)
	}
	first.Close()

	second := NewStore(path)
	defer second.Close()
	if err := second.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	records, err := second.Fetch(ctx, "2025-03-14", "2025-03-14")
	if err != nil || len(records) != 1 {
		t.Fatalf("Fetch() = %v, %v", records, err)
	}
}

func TestFetchRange(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	for _, rec := range []models.EventRecord{
		record("late", "2025-03-14T16:00:00", "2025-03-14T17:00:00"),
		record("early", "2025-03-14T08:00:00", "2025-03-14T09:00:00"),
		record("before", "2025-03-09T23:59:00", "2025-03-10T00:30:00"),
		record("last-day", "2025-03-16T23:30:00", "2025-03-17T00:30:00"),
		record("after", "2025-03-17T00:00:00", "2025-03-17T01:00:00"),
	} {
		if _, err := store.AddEvent(ctx, rec); err != nil {
			t.Fatalf("AddEvent(%s) error = %v", rec.ID, err)
		}
	}

	records, err := store.Fetch(ctx, "2025-03-10", "2025-03-16")
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, r := range records {
		got = append(got, r.ID)
	}
	want := []string{"early", "late", "last-day"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
	if records[0].EventType != "Event" {
		t.Errorf("EventType = %q, want default", records[0].EventType)
	}
}

func TestAddEvent(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	id, err := store.AddEvent(ctx, models.EventRecord{
		Title:         "Generated id",
		StartDateTime: "2025-03-14 09:00:00",
		EndDateTime:   "2025-03-14T09:30:00",
		CalendarID:    "team",
		EventType:     "Task",
	})
	if err != nil {
		t.Fatalf("AddEvent() error = %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated id")
	}

	records, err := store.Fetch(ctx, "2025-03-14", "2025-03-14")
	if err != nil || len(records) != 1 {
		t.Fatalf("Fetch() = %v, %v", records, err)
	}
	if records[0].StartDateTime != "2025-03-14T09:00:00" {
		t.Errorf("start not normalized: %q", records[0].StartDateTime)
	}

	tests := []struct {
		name string
		rec  models.EventRecord
		want error
	}{
		{name: "missing calendar", rec: models.EventRecord{StartDateTime: "2025-03-14T09:00:00", EndDateTime: "2025-03-14T10:00:00"}, want: source.ErrMissingCalendar},
		{name: "end before start", rec: record("x", "2025-03-14T10:00:00", "2025-03-14T09:00:00"), want: source.ErrEndBeforeStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.AddEvent(ctx, tt.rec); !errors.Is(err, tt.want) {
				t.Errorf("AddEvent() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	if _, err := store.AddEvent(ctx, record("a", "2025-03-14T09:00:00", "2025-03-14T10:00:00")); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteEvent(ctx, "a"); err != nil {
		t.Fatalf("DeleteEvent() error = %v", err)
	}
	if err := store.DeleteEvent(ctx, "a"); err == nil {
		t.Error("deleting twice should fail")
	}
	records, err := store.Fetch(ctx, "2025-03-14", "2025-03-14")
	if err != nil || len(records) != 0 {
		t.Errorf("Fetch() after delete = %v, %v", records, err)
	}

	// Re-adding the same id revives it.
	if _, err := store.AddEvent(ctx, record("a", "2025-03-14T09:00:00", "2025-03-14T10:00:00")); err != nil {
		t.Fatal(err)
	}
	records, _ = store.Fetch(ctx, "2025-03-14", "2025-03-14")
	if len(records) != 1 {
		t.Errorf("got %d records after re-adding", len(records))
	}
}
