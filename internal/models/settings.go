package models

// Settings is the working-hours and presentation configuration consumed by the view engine.
type Settings struct {
	WorkStart    string `json:"work_start"`    // the time the working window starts, e.g. "08:00"
	WorkEnd      string `json:"work_end"`      // the time the working window ends, e.g. "18:00"
	SlotMinutes  int    `json:"slot_minutes"`  // the slot duration in minutes
	DefaultView  string `json:"default_view"`  // month, week, day or availability
	DetailAction string `json:"detail_action"` // optional flow launched from the event detail sheet
}
