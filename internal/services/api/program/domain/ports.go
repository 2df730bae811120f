package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Onboard(ctx context.Context, userID string, in OnboardInput) (ProgramView, error)
	Get(ctx context.Context, userID string) (ProgramView, error)
	Checkin(ctx context.Context, userID string, in CheckinInput) (CheckinResult, error)
	Calendar(ctx context.Context, userID, timezone string) (CalendarView, error)
}

// BadgeUnlocker is the cross module seam the badges module provides
// Evaluate is idempotent; it returns only newly unlocked badge keys
type BadgeUnlocker interface {
	EvaluateUnlocks(ctx context.Context, userID string, streak int) ([]string, error)
}
