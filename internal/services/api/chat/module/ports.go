package module

import (
	"context"

	"reclaim/internal/services/api/chat/domain"
	chatsvc "reclaim/internal/services/api/chat/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptChatPort struct{ svc chatsvc.Service }

// ListRooms returns every room
func (a adaptChatPort) ListRooms(ctx context.Context) ([]domain.RoomView, error) {
	return a.svc.ListRooms(ctx)
}

// Send posts a message for the given user
func (a adaptChatPort) Send(ctx context.Context, userID, roomID string, in domain.SendInput) (domain.MessageView, error) {
	return a.svc.Send(ctx, userID, roomID, in)
}
