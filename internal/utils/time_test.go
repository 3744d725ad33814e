package utils

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/julianstephens/calgrid/internal/errors"
)

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		timeStr string
		want    int
		wantErr bool
	}{
		{name: "midnight", timeStr: "00:00", want: 0},
		{name: "half past seven", timeStr: "07:30", want: 450},
		{name: "one pm", timeStr: "13:00", want: 780},
		{name: "end of day", timeStr: "23:59", want: 1439},
		{name: "hour out of range", timeStr: "25:00", wantErr: true},
		{name: "text", timeStr: "noon", wantErr: true},
		{name: "empty", timeStr: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeToMinutes(tt.timeStr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeToMinutes() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrInvalidTime) {
					t.Errorf("error %v is not ErrInvalidTime", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseTimeToMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := map[int]string{0: "00:00", 450: "07:30", 770: "12:50", 1439: "23:59"}
	for minutes, want := range tests {
		if got := FormatMinutes(minutes); got != want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", minutes, got, want)
		}
	}
}

func TestParseNaiveTimestamp(t *testing.T) {
	got, err := ParseNaiveTimestamp("2025-03-14T09:05:00")
	if err != nil {
		t.Fatalf("ParseNaiveTimestamp() error = %v", err)
	}
	if got.Location() != time.Local {
		t.Errorf("location = %v, want Local", got.Location())
	}
	if got.Hour() != 9 || got.Minute() != 5 || got.Day() != 14 {
		t.Errorf("ParseNaiveTimestamp() = %v", got)
	}

	if _, err := ParseNaiveTimestamp("2025-03-14 09:05"); err == nil {
		t.Error("ParseNaiveTimestamp() accepted a non-source layout")
	}
}

func TestParseGenericTimestamp(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		wantHour   int
		wantMinute int
		wantDay    int
		wantErr    bool
	}{
		{name: "zoned keeps wall clock", value: "2025-03-14T09:00:00Z", wantHour: 9, wantDay: 14},
		{name: "offset keeps wall clock", value: "2025-03-14T22:15:00+05:00", wantHour: 22, wantMinute: 15, wantDay: 14},
		{name: "space separated", value: "2025-03-14 10:30:00", wantHour: 10, wantMinute: 30, wantDay: 14},
		{name: "no seconds", value: "2025-03-14T10:30", wantHour: 10, wantMinute: 30, wantDay: 14},
		{name: "date only", value: "2025-03-14", wantDay: 14},
		{name: "european", value: "14/03/2025 08:45", wantHour: 8, wantMinute: 45, wantDay: 14},
		{name: "garbage", value: "next tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGenericTimestamp(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGenericTimestamp() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrNoParse) {
					t.Errorf("error %v is not ErrNoParse", err)
				}
				return
			}
			if got.Location() != time.Local {
				t.Errorf("location = %v, want Local", got.Location())
			}
			if got.Hour() != tt.wantHour || got.Minute() != tt.wantMinute || got.Day() != tt.wantDay {
				t.Errorf("ParseGenericTimestamp() = %v", got)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	if !SameDay(a, time.Date(2025, 3, 14, 23, 59, 0, 0, time.Local)) {
		t.Error("SameDay() = false for the same date")
	}
	if SameDay(a, time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)) {
		t.Error("SameDay() = true for the next day")
	}
	if SameDay(a, time.Date(2025, 4, 14, 9, 0, 0, 0, time.Local)) {
		t.Error("SameDay() = true for the same day-of-month in another month")
	}
	if SameDay(a, time.Date(2024, 3, 14, 9, 0, 0, 0, time.Local)) {
		t.Error("SameDay() = true for another year")
	}
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "monday", in: time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC), want: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{name: "friday", in: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), want: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{name: "sunday belongs to previous week", in: time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), want: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{name: "crosses month", in: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), want: time.Date(2025, 9, 29, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MondayOf(tt.in); !got.Equal(tt.want) {
				t.Errorf("MondayOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthBounds(t *testing.T) {
	leap := time.Date(2024, 2, 17, 0, 0, 0, 0, time.UTC)
	if got := FirstOfMonth(leap); got.Day() != 1 || got.Month() != time.February {
		t.Errorf("FirstOfMonth() = %v", got)
	}
	if got := LastOfMonth(leap); got.Day() != 29 || got.Month() != time.February {
		t.Errorf("LastOfMonth() = %v, want Feb 29", got)
	}
	if got := LastOfMonth(time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)); got.Day() != 31 || got.Year() != 2025 {
		t.Errorf("LastOfMonth(Dec) = %v", got)
	}
}

func TestMondayIndex(t *testing.T) {
	if MondayIndex(time.Sunday) != 6 || MondayIndex(time.Monday) != 0 || MondayIndex(time.Wednesday) != 2 {
		t.Error("MondayIndex() does not normalize to a Monday-start week")
	}
}
