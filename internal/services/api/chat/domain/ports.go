package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	ListRooms(ctx context.Context) ([]RoomView, error)
	CreateRoom(ctx context.Context, userID string, in CreateRoomInput) (RoomView, error)
	ListMessages(ctx context.Context, roomID string) ([]MessageView, error)
	Send(ctx context.Context, userID, roomID string, in SendInput) (MessageView, error)
	Pin(ctx context.Context, userID, roomID, messageID string, in PinInput) error
	Delete(ctx context.Context, userID, roomID, messageID string) error
	Ban(ctx context.Context, userID, roomID string, in BanInput) error
}
