package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/julianstephens/calgrid/internal/logger"
	"github.com/julianstephens/calgrid/internal/source/ics"
)

type ImportCmd struct {
	File     string `arg:"" type:"existingfile" help:"iCalendar (.ics) file to import."`
	Calendar string `short:"c" help:"Calendar id for the imported events. Defaults to the first configured calendar."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	calendarID := c.Calendar
	if calendarID == "" {
		calendarID = ctx.defaultCalendarID()
	}
	if _, ok := findCalendar(ctx, calendarID); !ok {
		return fmt.Errorf("unknown calendar: %s", calendarID)
	}

	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", c.File, err)
	}
	defer f.Close()

	records, err := ics.Decode(f, calendarID)
	if err != nil {
		return err
	}

	store, err := ctx.OpenStore(context.Background())
	if err != nil {
		return err
	}
	defer store.Close()
	ctx.autoBackup()

	imported := 0
	for _, rec := range records {
		if _, err := store.AddEvent(context.Background(), rec); err != nil {
			logger.Warn("Skipping event", "id", rec.ID, "title", rec.Title, "error", err)
			continue
		}
		imported++
	}

	ctx.printf("Imported %d of %d events into %s\n", imported, len(records), calendarID)
	return nil
}
