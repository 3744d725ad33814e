package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseViewKind(t *testing.T) {
	tests := []struct {
		in      string
		want    ViewKind
		wantErr bool
	}{
		{"month", ViewMonth, false},
		{"Week", ViewWeek, false},
		{" day ", ViewDay, false},
		{"AVAILABILITY", ViewAvailability, false},
		{"year", ViewMonth, true},
		{"", ViewMonth, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseViewKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseViewKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseViewKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestViewKindString(t *testing.T) {
	for _, k := range ViewKinds {
		parsed, err := ParseViewKind(k.String())
		if err != nil || parsed != k {
			t.Errorf("ParseViewKind(%q) = %v, %v", k.String(), parsed, err)
		}
	}
	if got := ViewKind(9).String(); got != "ViewKind(9)" {
		t.Errorf("unknown kind String() = %q", got)
	}
}

func TestViewStateJSON(t *testing.T) {
	state := ViewState{Kind: ViewAvailability, Anchor: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)}
	data, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"kind":"availability","anchor":"2025-03-14T00:00:00Z"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var bad ViewState
	if err := json.Unmarshal([]byte(`{"kind":"year"}`), &bad); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestDateRange(t *testing.T) {
	r := DateRange{
		Start: time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		End:   time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local),
	}
	if r.StartDate() != "2025-03-10" || r.EndDate() != "2025-03-14" {
		t.Errorf("dates = %s, %s", r.StartDate(), r.EndDate())
	}
	if r.String() != "2025-03-10..2025-03-14" {
		t.Errorf("String() = %q", r.String())
	}
}
