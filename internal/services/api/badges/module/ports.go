package module

import (
	"context"

	"reclaim/internal/services/api/badges/domain"
	badgessvc "reclaim/internal/services/api/badges/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptBadgesPort struct{ svc badgessvc.Service }

// List returns the catalog with unlock state
func (a adaptBadgesPort) List(ctx context.Context, userID string) ([]domain.BadgeView, error) {
	return a.svc.List(ctx, userID)
}

// EvaluateUnlocks writes newly earned badges for the given streak
func (a adaptBadgesPort) EvaluateUnlocks(ctx context.Context, userID string, streak int) ([]string, error) {
	return a.svc.EvaluateUnlocks(ctx, userID, streak)
}
