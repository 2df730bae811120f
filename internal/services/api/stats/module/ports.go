package module

import (
	"context"

	"reclaim/internal/services/api/stats/domain"
	statssvc "reclaim/internal/services/api/stats/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptStatsPort struct{ svc statssvc.Service }

// Weekly returns watch hours bucketed by day
func (a adaptStatsPort) Weekly(ctx context.Context, userID string, in domain.WeeklyInput) ([]domain.WeeklyRow, error) {
	return a.svc.Weekly(ctx, userID, in)
}

// Moods returns the mood mix in a given time window
func (a adaptStatsPort) Moods(ctx context.Context, userID string, in domain.MoodsInput) ([]domain.MoodsRow, error) {
	return a.svc.Moods(ctx, userID, in)
}

// Slots returns entries bucketed by time of day
func (a adaptStatsPort) Slots(ctx context.Context, userID string, in domain.SlotsInput) ([]domain.SlotsRow, error) {
	return a.svc.Slots(ctx, userID, in)
}
