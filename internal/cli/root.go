// Package cli holds the kong commands of calgrid.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/calgrid/internal/config"
	"github.com/julianstephens/calgrid/internal/constants"
	"github.com/julianstephens/calgrid/internal/engine"
	"github.com/julianstephens/calgrid/internal/keyring"
	"github.com/julianstephens/calgrid/internal/registry"
	"github.com/julianstephens/calgrid/internal/source"
	"github.com/julianstephens/calgrid/internal/source/ics"
	"github.com/julianstephens/calgrid/internal/source/postgres"
	"github.com/julianstephens/calgrid/internal/source/sqlite"
)

// ErrReadOnlySource is returned when a command needs to write events to an ics source.
var ErrReadOnlySource = errors.New("ics sources are read-only, configure a sqlite or postgres source")

type Context struct {
	ConfigPath string
	Config     *config.Config
	Out        io.Writer
	Now        func() time.Time
}

// NewContext loads and validates the configuration at configPath.
func NewContext(configPath string) (*Context, error) {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return &Context{ConfigPath: configPath, Config: cfg, Out: os.Stdout, Now: time.Now}, nil
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}

// NewStore returns the configured writable store without opening it.
func (c *Context) NewStore() (source.Store, error) {
	switch c.Config.Source.Type {
	case constants.SourceSQLite:
		return sqlite.NewStore(c.Config.Source.Path), nil
	case constants.SourcePostgres:
		connStr, err := c.connString()
		if err != nil {
			return nil, err
		}
		return postgres.New(connStr), nil
	case constants.SourceICS:
		return nil, ErrReadOnlySource
	default:
		return nil, fmt.Errorf("unknown source type %q", c.Config.Source.Type)
	}
}

// OpenStore returns the configured store, loaded and ready for use.
func (c *Context) OpenStore(ctx context.Context) (source.Store, error) {
	store, err := c.NewStore()
	if err != nil {
		return nil, err
	}
	if err := store.Load(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

// OpenSource returns the configured event source and a func releasing it.
func (c *Context) OpenSource(ctx context.Context) (source.Source, func() error, error) {
	if c.Config.Source.Type == constants.SourceICS {
		return ics.NewFileSource(c.Config.Source.Path, c.defaultCalendarID()), func() error { return nil }, nil
	}
	store, err := c.OpenStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}

// NewController builds a view controller over src with the configured
// calendars and settings.
func (c *Context) NewController(src source.Source, opts ...engine.Option) *engine.Controller {
	opts = append([]engine.Option{engine.WithClock(c.Now)}, opts...)
	return engine.New(src, registry.New(c.Config.CalendarList()...), c.Config.Settings(), opts...)
}

// connString resolves the postgres connection string. The config file may
// only hold a password-free URL; passwords come from the keyring or the
// environment.
func (c *Context) connString() (string, error) {
	if url := c.Config.Source.URL; url != "" {
		if err := postgres.ValidateConnString(url); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return "", fmt.Errorf("source.url: %w, store it with 'calgrid keyring set' or %s instead", err, constants.EnvConnectionString)
			}
			return "", fmt.Errorf("source.url: %w", err)
		}
	}
	connStr, err := keyring.Resolve(c.Config.Source.URL)
	if err != nil {
		return "", fmt.Errorf("no postgres connection string: %w", err)
	}
	return connStr, nil
}

func (c *Context) defaultCalendarID() string {
	if len(c.Config.Calendars) == 0 {
		return constants.DefaultCalendarID
	}
	return c.Config.Calendars[0].ID
}
