package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/calgrid/internal/models"
)

type AddCmd struct {
	Title       string `arg:"" help:"Event title."`
	Start       string `short:"s" help:"Start (YYYY-MM-DDTHH:MM:SS)." required:""`
	End         string `short:"e" help:"End (YYYY-MM-DDTHH:MM:SS). Defaults to the start."`
	Calendar    string `short:"c" help:"Calendar id. Defaults to the first configured calendar."`
	Type        string `short:"t" help:"Event type, e.g. Event, Task or ServiceAppointment." default:"Event"`
	Location    string `short:"l" help:"Location."`
	Description string `help:"Description."`
	Owner       string `help:"Owner name."`
}

func (c *AddCmd) Run(ctx *Context) error {
	calendarID := c.Calendar
	if calendarID == "" {
		calendarID = ctx.defaultCalendarID()
	}
	if _, ok := findCalendar(ctx, calendarID); !ok {
		return fmt.Errorf("unknown calendar: %s", calendarID)
	}
	end := c.End
	if end == "" {
		end = c.Start
	}

	store, err := ctx.OpenStore(context.Background())
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.AddEvent(context.Background(), models.EventRecord{
		Title:         c.Title,
		StartDateTime: c.Start,
		EndDateTime:   end,
		CalendarID:    calendarID,
		EventType:     c.Type,
		Location:      c.Location,
		Description:   c.Description,
		OwnerName:     c.Owner,
	})
	if err != nil {
		return err
	}

	ctx.printf("Added event: %s (ID: %s)\n", c.Title, id)
	return nil
}

type DeleteCmd struct {
	ID string `arg:"" help:"ID of the event to delete."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore(context.Background())
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteEvent(context.Background(), c.ID); err != nil {
		return err
	}
	ctx.printf("Deleted event: %s\n", c.ID)
	return nil
}

func findCalendar(ctx *Context, id string) (models.Calendar, bool) {
	for _, cal := range ctx.Config.CalendarList() {
		if cal.ID == id {
			return cal, true
		}
	}
	return models.Calendar{}, false
}
