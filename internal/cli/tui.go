package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/calgrid/internal/engine"
	"github.com/julianstephens/calgrid/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	src, closeSource, err := ctx.OpenSource(context.Background())
	if err != nil {
		return err
	}
	defer closeSource()

	model := tui.New(func(l engine.Listener) *engine.Controller {
		return ctx.NewController(src, engine.WithListener(l))
	}, &tui.Navigator{})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
