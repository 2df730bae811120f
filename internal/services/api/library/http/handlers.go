// Package http provides http transport for the library
package http

import (
	stdhttp "net/http"

	"reclaim/internal/modkit/httpkit"
	"reclaim/internal/services/api/library/domain"
	svc "reclaim/internal/services/api/library/service"
)

// Register mounts library endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/books", h.list)
	httpkit.PostJSON[domain.AddBookInput](r, "/books", h.add)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /library/books Library libraryBooks
// @Summary Book shelf
// @Tags Library
// @Produce json
// @Success 200 {array} domain.BookView "ok"
// @Router /library/books [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	if _, err := httpkit.User(r); err != nil {
		return nil, err
	}
	return h.svc.List(r.Context())
}

// swagger:route POST /library/books Library libraryAdd
// @Summary Register a book
// @Tags Library
// @Accept json
// @Produce json
// @Param payload body domain.AddBookInput true "Book"
// @Success 200 {object} domain.BookView "ok"
// @Router /library/books [post]
func (h *handlers) add(r *stdhttp.Request, in domain.AddBookInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Add(r.Context(), uid, in)
}
