package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/calgrid/internal/engine"
	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/navigation"
	"github.com/julianstephens/calgrid/internal/render"
	"github.com/julianstephens/calgrid/internal/utils"
)

type ShowCmd struct {
	Kind  string `arg:"" optional:"" help:"View to show (month|week|day|availability). Defaults to the configured view."`
	Date  string `short:"d" help:"Date to anchor the view at (YYYY-MM-DD or 'today')." default:"today"`
	Width int    `short:"w" help:"Output width in columns." default:"120"`
}

func (c *ShowCmd) Validate() error {
	if c.Kind != "" {
		if _, err := models.ParseViewKind(c.Kind); err != nil {
			return err
		}
	}
	if c.Date != "today" {
		if _, err := utils.ParseDate(c.Date); err != nil {
			return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD or 'today')", c.Date)
		}
	}
	return nil
}

// state resolves the requested view kind and anchor.
func (c *ShowCmd) state(ctx *Context) models.ViewState {
	name := c.Kind
	if name == "" {
		name = ctx.Config.DefaultView
	}
	kind, _ := models.ParseViewKind(name)
	anchor := ctx.Now()
	if c.Date != "today" {
		if d, err := utils.ParseDate(c.Date); err == nil {
			anchor = d
		}
	}
	return navigation.New(kind, utils.DateOnly(anchor))
}

func (c *ShowCmd) Run(ctx *Context) error {
	src, closeSource, err := ctx.OpenSource(context.Background())
	if err != nil {
		return err
	}
	defer closeSource()

	ctrl := ctx.NewController(src, engine.WithState(c.state(ctx)))
	loadErr := ctrl.Load(context.Background())

	ctx.println(render.Grid(ctrl.Grid(), render.Options{Width: c.Width}))
	return loadErr
}
