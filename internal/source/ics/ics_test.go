package ics

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCalendar = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//calgrid//test//EN
BEGIN:VEVENT
UID:standup
SUMMARY:Standup
DTSTAMP:20250301T000000Z
DTSTART:20250314T090000
DTEND:20250314T091500
LOCATION:Room 4
ORGANIZER;CN=Ada Lovelace:mailto:ada@example.com
CATEGORIES:Task,Internal
END:VEVENT
BEGIN:VEVENT
UID:holiday
SUMMARY:Holiday
DTSTAMP:20250301T000000Z
DTSTART;VALUE=DATE:20250317
DTEND;VALUE=DATE:20250318
END:VEVENT
BEGIN:VEVENT
UID:open-ended
SUMMARY:No end
DTSTAMP:20250301T000000Z
DTSTART:20250315T100000
ORGANIZER:mailto:bob@example.com
END:VEVENT
BEGIN:VEVENT
UID:broken
SUMMARY:Missing start
DTSTAMP:20250301T000000Z
END:VEVENT
END:VCALENDAR
`

func TestDecode(t *testing.T) {
	records, err := Decode(strings.NewReader(testCalendar), "team")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	standup := records[0]
	if standup.StartDateTime != "2025-03-14T09:00:00" || standup.EndDateTime != "2025-03-14T09:15:00" {
		t.Errorf("standup times = %s..%s", standup.StartDateTime, standup.EndDateTime)
	}
	if standup.OwnerName != "Ada Lovelace" || standup.EventType != "Task" || standup.CalendarID != "team" {
		t.Errorf("standup = %+v", standup)
	}

	holiday := records[1]
	if holiday.StartDateTime != "2025-03-17T00:00:00" || holiday.EventType != "Event" {
		t.Errorf("holiday = %+v", holiday)
	}

	open := records[2]
	if open.EndDateTime != "2025-03-15T11:00:00" {
		t.Errorf("default end = %s", open.EndDateTime)
	}
	if open.OwnerName != "bob@example.com" {
		t.Errorf("OwnerName = %q", open.OwnerName)
	}
}

func TestFileSourceFetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cal.ics")
	if err := os.WriteFile(path, []byte(testCalendar), 0644); err != nil {
		t.Fatal(err)
	}
	src := NewFileSource(path, "myEvents")

	records, err := src.Fetch(context.Background(), "2025-03-14", "2025-03-15")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(records) != 2 || records[0].ID != "standup" || records[1].ID != "open-ended" {
		t.Errorf("Fetch() = %+v", records)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing.ics"), "myEvents")
	if _, err := src.Fetch(context.Background(), "2025-03-14", "2025-03-15"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
