package module

import (
	"context"

	"reclaim/internal/services/api/logs/domain"
	logssvc "reclaim/internal/services/api/logs/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptLogsPort struct{ svc logssvc.Service }

// Counts returns entries-per-day for the user
func (a adaptLogsPort) Counts(ctx context.Context, userID string) (domain.CountsView, error) {
	return a.svc.Counts(ctx, userID)
}

// List returns entries in a date range
func (a adaptLogsPort) List(ctx context.Context, userID string, in domain.ListInput) ([]domain.EntryView, error) {
	return a.svc.List(ctx, userID, in)
}
