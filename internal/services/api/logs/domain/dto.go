// Package domain holds DTOs for logs http and service contracts
package domain

// Watch slots partition the day for the analytics heatmap
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
	SlotNight     = "night"
)

// AppendInput records one behavioral entry for the caller's current day.
// Entries are append only and always land on today; backdating is not allowed
type AppendInput struct {
	HoursWatched float64 `json:"hours_watched" validate:"required,gt=0,max=24" example:"1.5"`
	WatchSlot    string  `json:"watch_slot" validate:"required,oneof=morning afternoon evening night" example:"evening"`
	Mood         string  `json:"mood" validate:"required,oneof=great good okay low awful" example:"okay"`
	Relapsed     bool    `json:"relapsed" example:"false"`
	Note         string  `json:"note,omitempty" validate:"omitempty,max=500" example:"rough evening"`
	Timezone     string  `json:"timezone,omitempty" validate:"omitempty,timezone" example:"America/New_York"`
}

// ListInput selects entries in a closed date range
type ListInput struct {
	From string `json:"from" validate:"required,datetime=2006-01-02" example:"2026-09-01"`
	To   string `json:"to" validate:"required,datetime=2006-01-02" example:"2026-09-30"`
}

// EntryView is the read model for one log entry
type EntryView struct {
	ID           string  `json:"id" example:"0d9adf80-93a6-4f8e-a97e-2f4b4f6e6d61"`
	LogDate      string  `json:"log_date" example:"2026-09-14"`
	HoursWatched float64 `json:"hours_watched" example:"1.5"`
	WatchSlot    string  `json:"watch_slot" example:"evening"`
	Mood         string  `json:"mood" example:"okay"`
	Relapsed     bool    `json:"relapsed" example:"false"`
	Note         string  `json:"note,omitempty" example:"rough evening"`
}

// CountsView maps YYYY-MM-DD to the number of entries that day
type CountsView struct {
	Counts map[string]int `json:"counts"`
}
