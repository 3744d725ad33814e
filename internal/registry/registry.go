// Package registry holds the sub-calendars of a session and resolves the
// display color and visibility of their events.
package registry

import (
	"github.com/julianstephens/calgrid/internal/constants"
	apperrors "github.com/julianstephens/calgrid/internal/errors"
	"github.com/julianstephens/calgrid/internal/logger"
	"github.com/julianstephens/calgrid/internal/models"
)

// Registry keeps calendars in insertion order. Lookups against unknown ids
// never fail; they fall back to a default color and report not visible.
type Registry struct {
	calendars []models.Calendar
	index     map[string]int
}

// New creates a registry holding the given calendars in order.
// A later calendar with a duplicate id replaces the earlier one in place.
func New(calendars ...models.Calendar) *Registry {
	r := &Registry{index: make(map[string]int)}
	for _, c := range calendars {
		r.Add(c)
	}
	return r
}

// Add registers a calendar, or replaces the calendar with the same id.
func (r *Registry) Add(c models.Calendar) {
	if i, ok := r.index[c.ID]; ok {
		r.calendars[i] = c
		return
	}
	r.index[c.ID] = len(r.calendars)
	r.calendars = append(r.calendars, c)
}

// Get returns the calendar with the given id.
func (r *Registry) Get(id string) (models.Calendar, bool) {
	i, ok := r.index[id]
	if !ok {
		return models.Calendar{}, false
	}
	return r.calendars[i], true
}

// ResolveColor returns the calendar's color, or constants.FallbackColor for unknown ids.
func (r *Registry) ResolveColor(calendarID string) string {
	c, ok := r.Get(calendarID)
	if !ok || c.Color == "" {
		if !ok {
			logger.Debug("Resolving color", "calendar", calendarID, "error", apperrors.ErrUnknownCalendar)
		}
		return constants.FallbackColor
	}
	return c.Color
}

// IsVisible reports whether the calendar is visible. Unknown ids are not visible.
func (r *Registry) IsVisible(calendarID string) bool {
	c, ok := r.Get(calendarID)
	if !ok {
		logger.Debug("Resolving visibility", "calendar", calendarID, "error", apperrors.ErrUnknownCalendar)
		return false
	}
	return c.Visible
}

// SetColor changes a calendar's color and recolors every loaded event that
// belongs to it. Unknown ids are ignored.
func (r *Registry) SetColor(calendarID, color string, loaded []models.Event) {
	i, ok := r.index[calendarID]
	if !ok {
		logger.Debug("Ignoring color change", "calendar", calendarID, "error", apperrors.ErrUnknownCalendar)
		return
	}
	r.calendars[i].Color = color
	for j := range loaded {
		if loaded[j].CalendarID == calendarID {
			loaded[j].Color = color
		}
	}
}

// SetVisible toggles a calendar. Loaded events are untouched; the next build
// decides what is shown.
func (r *Registry) SetVisible(calendarID string, visible bool) {
	i, ok := r.index[calendarID]
	if !ok {
		logger.Debug("Ignoring visibility change", "calendar", calendarID, "error", apperrors.ErrUnknownCalendar)
		return
	}
	r.calendars[i].Visible = visible
}

// Calendars returns a copy of every calendar in insertion order.
func (r *Registry) Calendars() []models.Calendar {
	out := make([]models.Calendar, len(r.calendars))
	copy(out, r.calendars)
	return out
}

// VisibleCalendars returns the visible calendars in insertion order.
func (r *Registry) VisibleCalendars() []models.Calendar {
	out := make([]models.Calendar, 0, len(r.calendars))
	for _, c := range r.calendars {
		if c.Visible {
			out = append(out, c)
		}
	}
	return out
}

// FilterVisible returns the events whose calendar is visible, preserving order.
func (r *Registry) FilterVisible(events []models.Event) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if r.IsVisible(e.CalendarID) {
			out = append(out, e)
		}
	}
	return out
}
