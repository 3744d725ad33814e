// Package navigation holds the transition rules of the view state machine.
// Each function takes a ViewState and returns the next one; none of them
// build grids or fetch events.
package navigation

import (
	"time"

	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/utils"
)

// New returns the initial state for kind, anchored at today.
func New(kind models.ViewKind, now time.Time) models.ViewState {
	return models.ViewState{Kind: kind, Anchor: utils.DateOnly(now)}
}

// Switch changes the view kind. Switching to a different kind re-anchors the
// state at today; switching to the current kind returns the state unchanged.
// The boolean reports whether a transition happened.
func Switch(state models.ViewState, kind models.ViewKind, now time.Time) (models.ViewState, bool) {
	if state.Kind == kind {
		return state, false
	}
	return New(kind, now), true
}

// Previous steps the anchor back by one view unit.
func Previous(state models.ViewState) models.ViewState {
	return step(state, -1)
}

// Next steps the anchor forward by one view unit.
func Next(state models.ViewState) models.ViewState {
	return step(state, 1)
}

func step(state models.ViewState, dir int) models.ViewState {
	anchor := utils.DateOnly(state.Anchor)
	switch state.Kind {
	case models.ViewMonth:
		anchor = time.Date(anchor.Year(), anchor.Month()+time.Month(dir), 1, 0, 0, 0, 0, anchor.Location())
	case models.ViewWeek:
		anchor = anchor.AddDate(0, 0, 7*dir)
	case models.ViewDay, models.ViewAvailability:
		anchor = anchor.AddDate(0, 0, dir)
	}
	return models.ViewState{Kind: state.Kind, Anchor: anchor}
}

// Range returns the inclusive day range to fetch for state: the anchor's
// month, Monday through Friday of the anchor's week, or the anchor day.
func Range(state models.ViewState) models.DateRange {
	anchor := utils.DateOnly(state.Anchor)
	switch state.Kind {
	case models.ViewMonth:
		return models.DateRange{Start: utils.FirstOfMonth(anchor), End: utils.LastOfMonth(anchor)}
	case models.ViewWeek:
		monday := utils.MondayOf(anchor)
		return models.DateRange{Start: monday, End: monday.AddDate(0, 0, 4)}
	default:
		return models.DateRange{Start: anchor, End: anchor}
	}
}
