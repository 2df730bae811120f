// Package http provides http transport for chat
package http

import (
	stdhttp "net/http"

	"reclaim/internal/modkit/httpkit"
	"reclaim/internal/services/api/chat/domain"
	svc "reclaim/internal/services/api/chat/service"

	"github.com/go-chi/chi/v5"
)

// Register mounts chat endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/rooms", h.listRooms)
	httpkit.PostJSON[domain.CreateRoomInput](r, "/rooms", h.createRoom)

	httpkit.Get(r, "/rooms/{roomID}/messages", h.listMessages)
	httpkit.PostJSON[domain.SendInput](r, "/rooms/{roomID}/messages", h.send)

	// moderator actions
	httpkit.PostJSON[domain.PinInput](r, "/rooms/{roomID}/messages/{messageID}/pin", h.pin)
	httpkit.Delete(r, "/rooms/{roomID}/messages/{messageID}", h.delete)
	httpkit.PostJSON[domain.BanInput](r, "/rooms/{roomID}/ban", h.ban)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /chat/rooms Chat chatRooms
// @Summary List chat rooms
// @Tags Chat
// @Produce json
// @Success 200 {array} domain.RoomView "ok"
// @Router /chat/rooms [get]
func (h *handlers) listRooms(r *stdhttp.Request) (any, error) {
	if _, err := httpkit.User(r); err != nil {
		return nil, err
	}
	return h.svc.ListRooms(r.Context())
}

// swagger:route POST /chat/rooms Chat chatCreateRoom
// @Summary Create a chat room
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body domain.CreateRoomInput true "Room"
// @Success 200 {object} domain.RoomView "ok"
// @Router /chat/rooms [post]
func (h *handlers) createRoom(r *stdhttp.Request, in domain.CreateRoomInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.CreateRoom(r.Context(), uid, in)
}

// swagger:route GET /chat/rooms/{roomID}/messages Chat chatMessages
// @Summary Room messages, pinned first
// @Tags Chat
// @Produce json
// @Param roomID path string true "Room id"
// @Success 200 {array} domain.MessageView "ok"
// @Router /chat/rooms/{roomID}/messages [get]
func (h *handlers) listMessages(r *stdhttp.Request) (any, error) {
	if _, err := httpkit.User(r); err != nil {
		return nil, err
	}
	return h.svc.ListMessages(r.Context(), chi.URLParam(r, "roomID"))
}

// swagger:route POST /chat/rooms/{roomID}/messages Chat chatSend
// @Summary Send a message
// @Tags Chat
// @Accept json
// @Produce json
// @Param roomID path string true "Room id"
// @Param payload body domain.SendInput true "Message"
// @Success 200 {object} domain.MessageView "ok"
// @Router /chat/rooms/{roomID}/messages [post]
func (h *handlers) send(r *stdhttp.Request, in domain.SendInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Send(r.Context(), uid, chi.URLParam(r, "roomID"), in)
}

// swagger:route POST /chat/rooms/{roomID}/messages/{messageID}/pin Chat chatPin
// @Summary Pin or unpin a message
// @Tags Chat
// @Accept json
// @Param roomID path string true "Room id"
// @Param messageID path string true "Message id"
// @Param payload body domain.PinInput true "Pin flag"
// @Success 200 "ok"
// @Router /chat/rooms/{roomID}/messages/{messageID}/pin [post]
func (h *handlers) pin(r *stdhttp.Request, in domain.PinInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	err = h.svc.Pin(r.Context(), uid, chi.URLParam(r, "roomID"), chi.URLParam(r, "messageID"), in)
	return nil, err
}

// swagger:route DELETE /chat/rooms/{roomID}/messages/{messageID} Chat chatDelete
// @Summary Delete a message
// @Tags Chat
// @Param roomID path string true "Room id"
// @Param messageID path string true "Message id"
// @Success 200 "ok"
// @Router /chat/rooms/{roomID}/messages/{messageID} [delete]
func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	err = h.svc.Delete(r.Context(), uid, chi.URLParam(r, "roomID"), chi.URLParam(r, "messageID"))
	return nil, err
}

// swagger:route POST /chat/rooms/{roomID}/ban Chat chatBan
// @Summary Ban a user from a room
// @Tags Chat
// @Accept json
// @Param roomID path string true "Room id"
// @Param payload body domain.BanInput true "Target user"
// @Success 200 "ok"
// @Router /chat/rooms/{roomID}/ban [post]
func (h *handlers) ban(r *stdhttp.Request, in domain.BanInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	err = h.svc.Ban(r.Context(), uid, chi.URLParam(r, "roomID"), in)
	return nil, err
}
