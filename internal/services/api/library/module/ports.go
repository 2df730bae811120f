package module

import (
	"context"

	"reclaim/internal/services/api/library/domain"
	libsvc "reclaim/internal/services/api/library/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptLibraryPort struct{ svc libsvc.Service }

// List returns the shelf
func (a adaptLibraryPort) List(ctx context.Context) ([]domain.BookView, error) {
	return a.svc.List(ctx)
}
