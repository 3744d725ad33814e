package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/calgrid/internal/config"
	"github.com/julianstephens/calgrid/internal/models"
)

// CalendarFormModel holds the values edited by the calendar form.
type CalendarFormModel struct {
	CalendarID string
	Visible    bool
	Color      string
}

// NewCalendarPickForm selects the calendar to edit.
func NewCalendarPickForm(fm *CalendarFormModel, calendars []models.Calendar) *huh.Form {
	options := make([]huh.Option[string], len(calendars))
	for i, c := range calendars {
		options[i] = huh.NewOption(fmt.Sprintf("%s (%s)", c.Name, c.ID), c.ID)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Calendar").
				Options(options...).
				Value(&fm.CalendarID),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewCalendarForm edits the visibility and color of cal. The edited values
// start from the calendar's current settings.
func NewCalendarForm(fm *CalendarFormModel, cal models.Calendar) *huh.Form {
	fm.CalendarID = cal.ID
	fm.Visible = cal.Visible
	fm.Color = cal.Color
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Visible").
				Description(cal.Name).
				Value(&fm.Visible),
			huh.NewInput().
				Title("Color").
				Description("#RRGGBB").
				Value(&fm.Color).
				Validate(func(s string) error {
					if !config.ValidColor(s) {
						return fmt.Errorf("color must be #RRGGBB")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
