// Package service contains chat workflows
package service

import (
	"context"
	"time"

	"reclaim/internal/modkit/repokit"
	perr "reclaim/internal/platform/errors"
	"reclaim/internal/services/api/chat/domain"
	"reclaim/internal/services/api/chat/repo"

	"github.com/google/uuid"
)

// Service defines the chat service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the chat service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a chat service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("chat.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("chat.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// ListRooms returns every room, oldest first
func (s *Svc) ListRooms(ctx context.Context) ([]domain.RoomView, error) {
	recs, err := s.Repo.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.RoomView, 0, len(recs))
	for _, rec := range recs {
		out = append(out, roomView(rec))
	}
	return out, nil
}

// CreateRoom opens a new room owned by the caller
func (s *Svc) CreateRoom(ctx context.Context, userID string, in domain.CreateRoomInput) (domain.RoomView, error) {
	rec := repo.RoomRecord{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		CreatedBy:   userID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.InsertRoom(ctx, rec); err != nil {
		return domain.RoomView{}, err
	}
	return roomView(rec), nil
}

// ListMessages returns a room's messages, pinned first
func (s *Svc) ListMessages(ctx context.Context, roomID string) ([]domain.MessageView, error) {
	if _, err := s.Repo.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}
	recs, err := s.Repo.ListMessages(ctx, roomID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MessageView, 0, len(recs))
	for _, rec := range recs {
		out = append(out, messageView(rec))
	}
	return out, nil
}

// Send posts a message unless the caller is banned from the room
func (s *Svc) Send(ctx context.Context, userID, roomID string, in domain.SendInput) (domain.MessageView, error) {
	if _, err := s.Repo.GetRoom(ctx, roomID); err != nil {
		return domain.MessageView{}, err
	}
	banned, err := s.Repo.IsBanned(ctx, roomID, userID)
	if err != nil {
		return domain.MessageView{}, err
	}
	if banned {
		return domain.MessageView{}, perr.Forbiddenf("user is banned from this room")
	}

	rec := repo.MessageRecord{
		ID:        uuid.NewString(),
		RoomID:    roomID,
		UserID:    userID,
		Body:      in.Body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.InsertMessage(ctx, rec); err != nil {
		return domain.MessageView{}, err
	}
	return messageView(rec), nil
}

// Pin sets a message's pinned flag; moderators only
func (s *Svc) Pin(ctx context.Context, userID, roomID, messageID string, in domain.PinInput) error {
	if err := s.requireModerator(ctx, userID); err != nil {
		return err
	}
	return s.Repo.SetPinned(ctx, roomID, messageID, in.Pinned)
}

// Delete removes a message; moderators only
func (s *Svc) Delete(ctx context.Context, userID, roomID, messageID string) error {
	if err := s.requireModerator(ctx, userID); err != nil {
		return err
	}
	return s.Repo.DeleteMessage(ctx, roomID, messageID)
}

// Ban blocks a user from sending in a room; moderators only
func (s *Svc) Ban(ctx context.Context, userID, roomID string, in domain.BanInput) error {
	if err := s.requireModerator(ctx, userID); err != nil {
		return err
	}
	if _, err := s.Repo.GetRoom(ctx, roomID); err != nil {
		return err
	}
	return s.Repo.InsertBan(ctx, roomID, in.UserID, userID)
}

func (s *Svc) requireModerator(ctx context.Context, userID string) error {
	mod, err := s.Repo.IsModerator(ctx, userID)
	if err != nil {
		return err
	}
	if !mod {
		return perr.Forbiddenf("moderator role required")
	}
	return nil
}

func roomView(rec repo.RoomRecord) domain.RoomView {
	return domain.RoomView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
}

func messageView(rec repo.MessageRecord) domain.MessageView {
	return domain.MessageView{
		ID:        rec.ID,
		RoomID:    rec.RoomID,
		UserID:    rec.UserID,
		Body:      rec.Body,
		Pinned:    rec.Pinned,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}
}
