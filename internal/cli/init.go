package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/julianstephens/calgrid/internal/config"
	"github.com/julianstephens/calgrid/internal/constants"
)

type InitCmd struct {
	Source string `help:"Event source type (sqlite|postgres|ics)."`
	Path   string `help:"SQLite database or .ics file path."`
	URL    string `help:"PostgreSQL connection string without password."`
	Force  bool   `help:"Overwrite an existing config file."`
}

func (c *InitCmd) Validate() error {
	switch c.Source {
	case "", constants.SourceSQLite, constants.SourcePostgres, constants.SourceICS:
		return nil
	}
	return fmt.Errorf("invalid source type: %s", c.Source)
}

func (c *InitCmd) Run(ctx *Context) error {
	path := config.ExpandPath(ctx.ConfigPath)
	_, err := os.Stat(path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to access config file: %w", err)
	}

	if !exists || c.Force {
		cfg := ctx.Config
		if c.Source != "" {
			cfg.Source = config.SourceConfig{Type: c.Source}
		}
		if c.Path != "" {
			cfg.Source.Path = config.ExpandPath(c.Path)
		}
		if c.URL != "" {
			cfg.Source.URL = c.URL
		}
		if cfg.Source.Type == constants.SourceSQLite && cfg.Source.Path == "" {
			cfg.Source.Path = config.ExpandPath(constants.DefaultStorePath)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.Save(path); err != nil {
			return err
		}
		ctx.printf("Wrote config to: %s\n", path)
	} else {
		ctx.printf("Using existing config at: %s\n", path)
	}

	if ctx.Config.Source.Type == constants.SourceICS {
		ctx.printf("Reading events from: %s\n", ctx.Config.Source.Path)
		return nil
	}

	store, err := ctx.NewStore()
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Init(context.Background()); err != nil {
		return err
	}
	ctx.printf("Initialized %s event store\n", ctx.Config.Source.Type)
	return nil
}
