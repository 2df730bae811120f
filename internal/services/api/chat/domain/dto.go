// Package domain holds DTOs for chat http and service contracts
package domain

// CreateRoomInput opens a new room
type CreateRoomInput struct {
	Name        string `json:"name" validate:"required,min=2,max=80" example:"Day One Support"`
	Description string `json:"description,omitempty" validate:"omitempty,max=280" example:"A place to get through the first days"`
}

// RoomView is the read model for one room
type RoomView struct {
	ID          string `json:"id" example:"3e1f3a52-7a88-4c70-b6ad-0a4f2f6f7e20"`
	Name        string `json:"name" example:"Day One Support"`
	Description string `json:"description,omitempty" example:"A place to get through the first days"`
	CreatedAt   string `json:"created_at" example:"2026-09-01T10:00:00Z"`
}

// SendInput posts one message to a room
type SendInput struct {
	Body string `json:"body" validate:"required,min=1,max=1000" example:"rough day but still clean"`
}

// MessageView is the read model for one message
type MessageView struct {
	ID        string `json:"id" example:"bb2e77f0-5a30-4f74-bd44-ffb74a7e0a11"`
	RoomID    string `json:"room_id" example:"3e1f3a52-7a88-4c70-b6ad-0a4f2f6f7e20"`
	UserID    string `json:"user_id" example:"0d9adf80-93a6-4f8e-a97e-2f4b4f6e6d61"`
	Body      string `json:"body" example:"rough day but still clean"`
	Pinned    bool   `json:"pinned" example:"false"`
	CreatedAt string `json:"created_at" example:"2026-09-14T19:02:00Z"`
}

// PinInput sets a message's pinned flag
type PinInput struct {
	Pinned bool `json:"pinned" example:"true"`
}

// BanInput bans a user from a room
type BanInput struct {
	UserID string `json:"user_id" validate:"required,uuid4" example:"0d9adf80-93a6-4f8e-a97e-2f4b4f6e6d61"`
}
