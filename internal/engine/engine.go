// Package engine drives the calendar view: it owns the current view state,
// the calendar registry and the events of the loaded range, asks the event
// source for new ranges and rebuilds the grid after every change.
//
// A Controller is not safe for concurrent use. Hosts call it from a single
// goroutine; only Fetch may run elsewhere.
package engine

import (
	"context"
	"time"

	apperrors "github.com/julianstephens/calgrid/internal/errors"
	"github.com/julianstephens/calgrid/internal/logger"
	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/navigation"
	"github.com/julianstephens/calgrid/internal/registry"
	"github.com/julianstephens/calgrid/internal/source"
	"github.com/julianstephens/calgrid/internal/view"
)

// Listener receives the notifications the controller emits to its host.
type Listener interface {
	EventActivated(event models.Event)
	GridRebuilt(grid view.Grid)
	LoadFailed(message string)
}

// Hooks is a Listener built from optional callbacks.
type Hooks struct {
	OnEventActivated func(models.Event)
	OnGridRebuilt    func(view.Grid)
	OnLoadFailed     func(string)
}

func (h Hooks) EventActivated(event models.Event) {
	if h.OnEventActivated != nil {
		h.OnEventActivated(event)
	}
}

func (h Hooks) GridRebuilt(grid view.Grid) {
	if h.OnGridRebuilt != nil {
		h.OnGridRebuilt(grid)
	}
}

func (h Hooks) LoadFailed(message string) {
	if h.OnLoadFailed != nil {
		h.OnLoadFailed(message)
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithListener sets the listener notified of activations, rebuilds and load failures.
func WithListener(l Listener) Option {
	return func(c *Controller) {
		c.listener = l
	}
}

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithState sets the initial view state instead of the default view at today.
func WithState(state models.ViewState) Option {
	return func(c *Controller) {
		c.state = state
		c.stateSet = true
	}
}

type Controller struct {
	source   source.Source
	registry *registry.Registry
	settings models.Settings
	listener Listener
	now      func() time.Time

	state    models.ViewState
	stateSet bool
	events   []models.Event
	grid     view.Grid
}

// New creates a controller in the settings' default view, anchored at today.
// An unknown default view falls back to month.
func New(src source.Source, reg *registry.Registry, settings models.Settings, opts ...Option) *Controller {
	c := &Controller{
		source:   src,
		registry: reg,
		settings: settings,
		listener: Hooks{},
		now:      time.Now,
		events:   []models.Event{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if !c.stateSet {
		kind, err := models.ParseViewKind(settings.DefaultView)
		if err != nil {
			logger.Warn("Unknown default view, using month", "view", settings.DefaultView)
		}
		c.state = navigation.New(kind, c.now())
	}
	c.grid = c.build()
	return c
}

// State returns the current view state.
func (c *Controller) State() models.ViewState {
	return c.state
}

// Grid returns the most recently built grid.
func (c *Controller) Grid() view.Grid {
	return c.grid
}

// Registry returns the calendar registry the controller builds against.
func (c *Controller) Registry() *registry.Registry {
	return c.registry
}

// Settings returns the working-hours and presentation settings.
func (c *Controller) Settings() models.Settings {
	return c.settings
}

// Events returns a copy of the loaded events, including hidden calendars.
func (c *Controller) Events() []models.Event {
	out := make([]models.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Range returns the fetch range of the current state.
func (c *Controller) Range() models.DateRange {
	return navigation.Range(c.state)
}

// Previous steps back one view unit and returns the range to load.
func (c *Controller) Previous() models.DateRange {
	c.state = navigation.Previous(c.state)
	return c.Range()
}

// Next steps forward one view unit and returns the range to load.
func (c *Controller) Next() models.DateRange {
	c.state = navigation.Next(c.state)
	return c.Range()
}

// SwitchView changes the view kind, re-anchoring at today. It reports false
// when kind is already current, in which case nothing needs loading.
func (c *Controller) SwitchView(kind models.ViewKind) (models.DateRange, bool) {
	next, changed := navigation.Switch(c.state, kind, c.now())
	c.state = next
	return c.Range(), changed
}

// Today re-anchors the current view at today and returns the range to load.
func (c *Controller) Today() models.DateRange {
	c.state = navigation.New(c.state.Kind, c.now())
	return c.Range()
}

// Fetch asks the source for the records of r. It does not touch controller
// state and may be called from another goroutine.
func (c *Controller) Fetch(ctx context.Context, r models.DateRange) ([]models.EventRecord, error) {
	logger.Debug("Fetching events", "range", r.String())
	records, err := c.source.Fetch(ctx, r.StartDate(), r.EndDate())
	if err != nil {
		return nil, &apperrors.FetchError{Start: r.StartDate(), End: r.EndDate(), Err: err}
	}
	return records, nil
}

// Apply replaces the loaded events with the result of a fetch and rebuilds.
// Results are applied in the order they arrive, whatever range they were
// fetched for. On error the events are cleared, an empty grid is built and
// the listener is told why.
func (c *Controller) Apply(records []models.EventRecord, err error) view.Grid {
	if err != nil {
		logger.Error("Loading events failed", "error", err)
		c.events = []models.Event{}
		grid := c.Rebuild()
		c.listener.LoadFailed(err.Error())
		return grid
	}
	c.events = ToEvents(records, c.registry)
	logger.Debug("Loaded events", "records", len(records), "events", len(c.events))
	return c.Rebuild()
}

// Load fetches the current range and applies the result.
func (c *Controller) Load(ctx context.Context) error {
	records, err := c.Fetch(ctx, c.Range())
	c.Apply(records, err)
	return err
}

// Rebuild builds a fresh grid from the current state and notifies the listener.
func (c *Controller) Rebuild() view.Grid {
	c.grid = c.build()
	c.listener.GridRebuilt(c.grid)
	return c.grid
}

func (c *Controller) build() view.Grid {
	return view.Build(c.state, c.events, c.registry, view.OptionsFromSettings(c.settings, c.now()))
}

// SetCalendarVisible shows or hides a calendar without refetching.
func (c *Controller) SetCalendarVisible(calendarID string, visible bool) view.Grid {
	c.registry.SetVisible(calendarID, visible)
	return c.Rebuild()
}

// SetCalendarColor recolors a calendar and the loaded events that belong to it.
func (c *Controller) SetCalendarColor(calendarID, color string) view.Grid {
	c.registry.SetColor(calendarID, color, c.events)
	return c.Rebuild()
}

// Activate looks up a loaded event by id and emits it to the listener.
func (c *Controller) Activate(eventID string) (models.Event, bool) {
	for _, e := range c.events {
		if e.ID == eventID {
			c.listener.EventActivated(e)
			return e, true
		}
	}
	logger.Debug("Activated event is not loaded", "id", eventID)
	return models.Event{}, false
}
