// Package domain holds DTOs for stats http and service contracts
package domain

// Query window kept small and explicit
// Dates are civil days without timezone

// TimeRange defines a start and end day for queries
type TimeRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2026-09-01"`
	End   string `json:"end" validate:"required,datetime=2006-01-02" example:"2026-09-30"`
}

// WeeklyInput buckets watch hours by day for the bar chart
type WeeklyInput struct {
	Range TimeRange `json:"range"`
}

// WeeklyRow represents one bar in the weekly chart
type WeeklyRow struct {
	Day      string  `json:"day" example:"2026-09-14"`
	Hours    float64 `json:"hours" example:"2.5"`
	Entries  int64   `json:"entries" example:"3"`
	Relapses int64   `json:"relapses" example:"1"`
}

// Mood buckets

// MoodsInput is the input for the mood mix chart
type MoodsInput struct {
	Range TimeRange `json:"range"`
}

// MoodsRow represents one slice of the mood mix
type MoodsRow struct {
	Mood    string `json:"mood" example:"okay"`
	Entries int64  `json:"entries" example:"9"`
}

// Slot buckets

// SlotsInput is the input for the time-of-day heatmap
type SlotsInput struct {
	Range TimeRange `json:"range"`
}

// SlotsRow represents one cell of the slot heatmap
type SlotsRow struct {
	Slot    string  `json:"slot" example:"evening"`
	Entries int64   `json:"entries" example:"12"`
	Hours   float64 `json:"hours" example:"8.5"`
}
