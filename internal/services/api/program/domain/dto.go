// Package domain holds DTOs for program http and service contracts
package domain

// Dates travel as YYYY-MM-DD strings; the service parses them at the edge

// OnboardInput starts or restarts a user's program
type OnboardInput struct {
	Phase         string `json:"phase" validate:"required,oneof=reduction commitment" example:"reduction"`
	ReductionDays int    `json:"reduction_days,omitempty" validate:"omitempty,min=1,max=365" example:"90"`
	StartDate     string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2026-09-01"`
	Timezone      string `json:"timezone,omitempty" validate:"omitempty,timezone" example:"America/New_York"`
	Goal          string `json:"goal,omitempty" validate:"omitempty,max=280" example:"reclaim my evenings"`
}

// ProgramView is the read model returned to clients
type ProgramView struct {
	Phase       string `json:"phase" example:"reduction"`
	StartDate   string `json:"start_date" example:"2026-09-01"`
	EndDate     string `json:"end_date,omitempty" example:"2026-11-30"`
	Streak      int    `json:"streak" example:"12"`
	LastUpdated string `json:"last_updated,omitempty" example:"2026-09-13"`
	Goal        string `json:"goal,omitempty" example:"reclaim my evenings"`
}

// CheckinInput carries the caller's zone so the server resolves its civil day
type CheckinInput struct {
	Timezone string `json:"timezone,omitempty" validate:"omitempty,timezone" example:"America/New_York"`
}

// Check-in statuses
const (
	CheckinApplied = "applied" // patch written
	CheckinNoop    = "noop"    // already credited today, or anomaly
	CheckinStale   = "stale"   // lost the conditional write race; another session won
)

// CheckinResult reports what the reconciler decided and what was persisted
type CheckinResult struct {
	Status      string   `json:"status" example:"applied"`
	Outcome     string   `json:"outcome" example:"increment"`
	Streak      int      `json:"streak" example:"13"`
	LastUpdated string   `json:"last_updated" example:"2026-09-14"`
	Unlocked    []string `json:"unlocked,omitempty" example:"two-weeks"`
}

// CalendarDay is one annotated day for the calendar screen
type CalendarDay struct {
	LoggedCount int  `json:"logged_count,omitempty" example:"2"`
	Clean       bool `json:"clean,omitempty" example:"true"`
}

// CalendarView maps YYYY-MM-DD to its annotation
type CalendarView struct {
	Days map[string]CalendarDay `json:"days"`
}
