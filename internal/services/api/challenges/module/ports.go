package module

import (
	"context"

	"reclaim/internal/services/api/challenges/domain"
	chalsvc "reclaim/internal/services/api/challenges/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptChallengesPort struct{ svc chalsvc.Service }

// BySection returns one section's challenges with completion state
func (a adaptChallengesPort) BySection(ctx context.Context, userID, section string) ([]domain.ChallengeView, error) {
	return a.svc.BySection(ctx, userID, section)
}

// Complete awards a challenge once
func (a adaptChallengesPort) Complete(ctx context.Context, userID, challengeID string) (domain.CompleteResult, error) {
	return a.svc.Complete(ctx, userID, challengeID)
}
