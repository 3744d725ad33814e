package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/calgrid/internal/constants"
	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/navigation"
	"github.com/julianstephens/calgrid/internal/source"
)

// versioned is implemented by the SQL stores.
type versioned interface {
	SchemaVersion(ctx context.Context) (current, latest int, err error)
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	hasError := false
	report := func(name string, err error) {
		if err != nil {
			ctx.printf("❌ %s: FAIL\n", name)
			ctx.printf("   Error: %v\n", err)
			hasError = true
			return
		}
		ctx.printf("✓ %s: OK\n", name)
	}
	skip := func(name string) {
		ctx.printf("⊘ %s: SKIPPED (source not reachable)\n", name)
	}

	report("Config valid", ctx.Config.Validate())

	bg := context.Background()
	src, closeSource, err := ctx.OpenSource(bg)
	report("Source reachable", err)
	if err == nil {
		defer closeSource()
		if v, ok := src.(versioned); ok {
			report("Schema version", checkSchemaVersion(bg, v))
		}
		report("Event timestamps", checkEventTimestamps(bg, ctx, src))
	} else {
		skip("Event timestamps")
	}

	report("Clock/timezone", checkClockTimezone(ctx.Now()))

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.println("All diagnostics passed!")
	return nil
}

func checkSchemaVersion(ctx context.Context, v versioned) error {
	current, latest, err := v.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d, run 'calgrid init'", current, latest)
	}
	return nil
}

// checkEventTimestamps fetches the current month and reports records the
// views would have to skip.
func checkEventTimestamps(ctx context.Context, c *Context, src source.Source) error {
	r := navigation.Range(navigation.New(models.ViewMonth, c.Now()))
	records, err := src.Fetch(ctx, r.StartDate(), r.EndDate())
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", r, err)
	}
	bad := 0
	for _, rec := range records {
		if _, err := source.Normalize(rec); err != nil {
			c.printf("   %s: %v\n", rec.ID, err)
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d events in %s are malformed", bad, len(records), r)
	}
	return nil
}

func checkClockTimezone(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(constants.TimestampFormat))
	}
	return nil
}
