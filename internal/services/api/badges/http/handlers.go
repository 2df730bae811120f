// Package http provides http transport for badges
package http

import (
	stdhttp "net/http"

	"reclaim/internal/modkit/httpkit"
	svc "reclaim/internal/services/api/badges/service"
)

// Register mounts badges endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /badges Badges badgesList
// @Summary Badge catalog with unlock state
// @Tags Badges
// @Produce json
// @Success 200 {array} domain.BadgeView "ok"
// @Router /badges [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), uid)
}
