package cli

import (
	"github.com/julianstephens/calgrid/internal/render"
)

type CalendarsCmd struct{}

func (c *CalendarsCmd) Run(ctx *Context) error {
	ctx.println(render.Calendars(ctx.Config.CalendarList()))
	return nil
}
