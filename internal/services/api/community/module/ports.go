package module

import (
	"context"

	"reclaim/internal/services/api/community/domain"
	comsvc "reclaim/internal/services/api/community/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptCommunityPort struct{ svc comsvc.Service }

// ListPosts returns the feed for the given viewer
func (a adaptCommunityPort) ListPosts(ctx context.Context, userID string) ([]domain.PostView, error) {
	return a.svc.ListPosts(ctx, userID)
}
