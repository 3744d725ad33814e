package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/julianstephens/calgrid/internal/config"
	"github.com/julianstephens/calgrid/internal/engine"
)

type DebugCmd struct {
	ConfigPath *DebugConfigPathCmd `cmd:"" help:"Show the config file and event source."`
	DumpGrid   *DebugDumpGridCmd   `cmd:"" help:"Dump a view grid as JSON."`
	DumpEvents *DebugDumpEventsCmd `cmd:"" help:"Dump the raw event records of a view's range as JSON."`
}

type DebugConfigPathCmd struct{}

func (cmd *DebugConfigPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"config": config.ExpandPath(ctx.ConfigPath),
		"source": ctx.Config.Source.Type,
		"path":   ctx.Config.Source.Path,
	}
	return ctx.printJSON(output)
}

type DebugDumpGridCmd struct {
	View ShowCmd `embed:""`
}

func (cmd *DebugDumpGridCmd) Run(ctx *Context) error {
	if err := cmd.View.Validate(); err != nil {
		return err
	}
	src, closeSource, err := ctx.OpenSource(context.Background())
	if err != nil {
		return err
	}
	defer closeSource()

	ctrl := ctx.NewController(src, engine.WithState(cmd.View.state(ctx)))
	if err := ctrl.Load(context.Background()); err != nil {
		return err
	}
	return ctx.printJSON(ctrl.Grid())
}

type DebugDumpEventsCmd struct {
	View ShowCmd `embed:""`
}

func (cmd *DebugDumpEventsCmd) Run(ctx *Context) error {
	if err := cmd.View.Validate(); err != nil {
		return err
	}
	src, closeSource, err := ctx.OpenSource(context.Background())
	if err != nil {
		return err
	}
	defer closeSource()

	ctrl := ctx.NewController(src, engine.WithState(cmd.View.state(ctx)))
	records, err := ctrl.Fetch(context.Background(), ctrl.Range())
	if err != nil {
		return err
	}
	return ctx.printJSON(records)
}

func (c *Context) printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	c.println(string(jsonBytes))
	return nil
}
