package module

import (
	"context"

	"reclaim/internal/services/api/coach/domain"
	coachsvc "reclaim/internal/services/api/coach/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptCoachPort struct{ svc coachsvc.Service }

// Motivation returns a personalized message
func (a adaptCoachPort) Motivation(ctx context.Context, userID string) (domain.MotivationView, error) {
	return a.svc.Motivation(ctx, userID)
}

// Insights generates observations from recent logs
func (a adaptCoachPort) Insights(ctx context.Context, userID string, in domain.InsightsInput) ([]domain.Insight, error) {
	return a.svc.Insights(ctx, userID, in)
}
