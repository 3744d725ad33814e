package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/source/sqlite"
)

func setupTestStore(t *testing.T) (string, *sqlite.Store) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "calgrid.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	addEvent(t, store, "first")
	return dbPath, store
}

func addEvent(t *testing.T, store *sqlite.Store, id string) {
	t.Helper()
	_, err := store.AddEvent(context.Background(), models.EventRecord{
		ID: id, Title: id, StartDateTime: "2025-03-14T09:00:00", EndDateTime: "2025-03-14T10:00:00", CalendarID: "myEvents",
	})
	if err != nil {
		t.Fatalf("AddEvent() error = %v", err)
	}
}

func steppingClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
}

func TestCreateAndList(t *testing.T) {
	dbPath, _ := setupTestStore(t)
	mgr := NewManager(dbPath)
	mgr.now = steppingClock(time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local))

	first, err := mgr.Create(context.Background())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if first.Name != "events-20250314-090000.db" {
		t.Errorf("Name = %q", first.Name)
	}
	if _, err := mgr.Create(context.Background()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("len = %d, want 2", len(backups))
	}
	if backups[0].Name != "events-20250314-090100.db" {
		t.Errorf("newest = %q", backups[0].Name)
	}
	if backups[1].Size == 0 {
		t.Error("backup should not be empty")
	}
}

func TestCreateSameSecond(t *testing.T) {
	dbPath, _ := setupTestStore(t)
	mgr := NewManager(dbPath)
	fixed := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	mgr.now = func() time.Time { return fixed }

	a, err := mgr.Create(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	b, err := mgr.Create(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if a.Name == b.Name {
		t.Errorf("backups share a name: %s", a.Name)
	}
	backups, _ := mgr.List()
	if len(backups) != 2 {
		t.Errorf("len = %d, want 2", len(backups))
	}
}

func TestRotation(t *testing.T) {
	dbPath, _ := setupTestStore(t)
	mgr := NewManager(dbPath)
	mgr.now = steppingClock(time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local))

	for i := 0; i < MaxBackups+3; i++ {
		if _, err := mgr.Create(context.Background()); err != nil {
			t.Fatalf("Create() #%d error = %v", i, err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != MaxBackups {
		t.Fatalf("len = %d, want %d", len(backups), MaxBackups)
	}
	if backups[len(backups)-1].Name != "events-20250314-090300.db" {
		t.Errorf("oldest kept = %q", backups[len(backups)-1].Name)
	}
}

func TestRestore(t *testing.T) {
	dbPath, store := setupTestStore(t)
	mgr := NewManager(dbPath)
	mgr.now = steppingClock(time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local))

	snap, err := mgr.Create(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	addEvent(t, store, "second")
	store.Close()

	previous, err := mgr.Restore(context.Background(), snap.Name)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if previous.Path == "" {
		t.Error("the replaced database should have been backed up")
	}

	restored := sqlite.NewStore(dbPath)
	if err := restored.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer restored.Close()
	records, err := restored.Fetch(context.Background(), "2025-03-14", "2025-03-14")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].ID != "first" {
		t.Errorf("records = %+v", records)
	}
}

func TestRestoreInvalid(t *testing.T) {
	dbPath, _ := setupTestStore(t)
	mgr := NewManager(dbPath)

	if _, err := mgr.Restore(context.Background(), "events-20250101-000000.db"); err == nil {
		t.Error("restoring a missing backup should fail")
	}

	if err := os.MkdirAll(mgr.Dir(), 0700); err != nil {
		t.Fatal(err)
	}
	junk := filepath.Join(mgr.Dir(), "events-20250101-000000.db")
	if err := os.WriteFile(junk, []byte("not a database"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.Restore(context.Background(), "events-20250101-000000.db"); err == nil {
		t.Error("restoring a corrupt backup should fail")
	}
}

func TestListMissingDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "calgrid.db"))

	backups, err := mgr.List()
	if err != nil || len(backups) != 0 {
		t.Errorf("List() = %v, %v", backups, err)
	}
	if _, err := mgr.Create(context.Background()); err == nil {
		t.Error("Create() without a database should fail")
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"events-20250314-090000.db", true},
		{"events-20250314-090000-2.db", true},
		{"events-2025.db", false},
		{"calgrid.db", false},
		{"events-20250314-090000.txt", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := parseName(tt.name); ok != tt.ok {
				t.Errorf("parseName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
		})
	}
}
