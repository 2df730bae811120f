// Package domain holds DTOs for coach http and service contracts
package domain

// Motivation sources
const (
	SourceCoach    = "coach"    // live quote service
	SourceFallback = "fallback" // canned message, service unreachable
)

// MotivationView is one motivational message for the home screen
type MotivationView struct {
	Message string `json:"message" example:"Day 12. You are building something real."`
	Source  string `json:"source" example:"coach"`
}

// InsightsInput carries the caller's zone so the lookback window lands on their days
type InsightsInput struct {
	Timezone string `json:"timezone,omitempty" validate:"omitempty,timezone" example:"America/New_York"`
}

// Insight is one generated observation with a suggested action
type Insight struct {
	Type           string `json:"type" example:"warning"`
	Insight        string `json:"insight" example:"Evenings are your hardest window"`
	Recommendation string `json:"recommendation" example:"Plan something away from screens after 8pm"`
}
