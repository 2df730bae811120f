package module

import (
	"context"

	"reclaim/internal/services/api/program/domain"
	progsvc "reclaim/internal/services/api/program/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptProgramPort struct{ svc progsvc.Service }

// Get returns the user's program read model
func (a adaptProgramPort) Get(ctx context.Context, userID string) (domain.ProgramView, error) {
	return a.svc.Get(ctx, userID)
}

// Checkin credits today against the user's streak
func (a adaptProgramPort) Checkin(
	ctx context.Context, userID string, in domain.CheckinInput,
) (domain.CheckinResult, error) {
	return a.svc.Checkin(ctx, userID, in)
}
