// Package timeslot turns a working-hours window into the rows of a time grid.
package timeslot

import (
	"github.com/julianstephens/calgrid/internal/logger"
	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/utils"
)

// Generate returns slots starting at startTime and stepping by durationMinutes
// while the slot start is before endTime. The last slot may run past endTime.
// Unparseable bounds, a non-positive duration or an empty window yield no slots.
func Generate(startTime, endTime string, durationMinutes int) []models.TimeSlot {
	startMin, err := utils.ParseTimeToMinutes(startTime)
	if err != nil {
		logger.Debug("Ignoring working hours", "start", startTime, "error", err)
		return []models.TimeSlot{}
	}
	endMin, err := utils.ParseTimeToMinutes(endTime)
	if err != nil {
		logger.Debug("Ignoring working hours", "end", endTime, "error", err)
		return []models.TimeSlot{}
	}
	return FromMinutes(startMin, endMin, durationMinutes)
}

// FromMinutes is Generate over minutes-from-midnight bounds.
func FromMinutes(startMin, endMin, durationMinutes int) []models.TimeSlot {
	if durationMinutes <= 0 || endMin <= startMin {
		return []models.TimeSlot{}
	}

	slots := make([]models.TimeSlot, 0, (endMin-startMin+durationMinutes-1)/durationMinutes)
	for m := startMin; m < endMin; m += durationMinutes {
		slots = append(slots, models.TimeSlot{
			Label:               utils.FormatMinutes(m),
			MinutesFromMidnight: m,
		})
	}
	return slots
}

// Contains reports whether minutes falls in the slot starting at slot with the given duration.
func Contains(slot models.TimeSlot, durationMinutes, minutes int) bool {
	return slot.MinutesFromMidnight <= minutes && minutes < slot.MinutesFromMidnight+durationMinutes
}
