// Package source defines the event-fetch collaborator of the view engine.
package source

import (
	"context"
	"errors"

	"github.com/julianstephens/calgrid/internal/models"
)

// Source fetches the raw event records whose start falls within an inclusive
// day range. Dates are YYYY-MM-DD.
type Source interface {
	Fetch(ctx context.Context, startDate, endDate string) ([]models.EventRecord, error)
}

// Func adapts a plain function to a Source.
type Func func(ctx context.Context, startDate, endDate string) ([]models.EventRecord, error)

func (f Func) Fetch(ctx context.Context, startDate, endDate string) ([]models.EventRecord, error) {
	return f(ctx, startDate, endDate)
}

// Store is a writable event source backed by a database.
type Store interface {
	Source
	Init(ctx context.Context) error
	Load(ctx context.Context) error
	AddEvent(ctx context.Context, rec models.EventRecord) (string, error)
	DeleteEvent(ctx context.Context, id string) error
	Close() error
}

// ErrNotLoaded is returned by store methods called before Init or Load.
var ErrNotLoaded = errors.New("store is not loaded")
