package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/calgrid/internal/constants"
)

type ViewKind int

const (
	ViewMonth ViewKind = iota
	ViewWeek
	ViewDay
	ViewAvailability
)

// ViewKinds lists every view kind in display order.
var ViewKinds = []ViewKind{ViewMonth, ViewWeek, ViewDay, ViewAvailability}

func (k ViewKind) String() string {
	switch k {
	case ViewMonth:
		return "month"
	case ViewWeek:
		return "week"
	case ViewDay:
		return "day"
	case ViewAvailability:
		return "availability"
	default:
		return fmt.Sprintf("ViewKind(%d)", int(k))
	}
}

func (k ViewKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ViewKind) UnmarshalText(text []byte) error {
	v, err := ParseViewKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseViewKind parses a view kind name (case-insensitive).
func ParseViewKind(s string) (ViewKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "month":
		return ViewMonth, nil
	case "week":
		return ViewWeek, nil
	case "day":
		return ViewDay, nil
	case "availability":
		return ViewAvailability, nil
	default:
		return ViewMonth, fmt.Errorf("unknown view kind %q (expected month, week, day or availability)", s)
	}
}

// ViewState is the navigable view position. Anchor is always a date at
// midnight; for week views it is not necessarily a Monday.
type ViewState struct {
	Kind   ViewKind  `json:"kind"`
	Anchor time.Time `json:"anchor"`
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// StartDate returns the range start as YYYY-MM-DD.
func (r DateRange) StartDate() string {
	return r.Start.Format(constants.DateFormat)
}

// EndDate returns the range end as YYYY-MM-DD.
func (r DateRange) EndDate() string {
	return r.End.Format(constants.DateFormat)
}

func (r DateRange) String() string {
	return r.StartDate() + ".." + r.EndDate()
}
