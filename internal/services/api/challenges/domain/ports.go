package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	BySection(ctx context.Context, userID, section string) ([]ChallengeView, error)
	Complete(ctx context.Context, userID, challengeID string) (CompleteResult, error)
}
