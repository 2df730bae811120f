// Package http provides http transport for challenges
package http

import (
	stdhttp "net/http"

	"reclaim/internal/modkit/httpkit"
	svc "reclaim/internal/services/api/challenges/service"

	"github.com/go-chi/chi/v5"
)

// Register mounts challenges endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/{section}", h.bySection)
	httpkit.Post(r, "/{challengeID}/complete", h.complete)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /challenges/{section} Challenges challengesBySection
// @Summary Challenges in a section with completion state
// @Tags Challenges
// @Produce json
// @Param section path string true "daily, weekly or monthly"
// @Success 200 {array} domain.ChallengeView "ok"
// @Router /challenges/{section} [get]
func (h *handlers) bySection(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.BySection(r.Context(), uid, chi.URLParam(r, "section"))
}

// swagger:route POST /challenges/{challengeID}/complete Challenges challengesComplete
// @Summary Mark a challenge complete
// @Tags Challenges
// @Produce json
// @Param challengeID path string true "Challenge id"
// @Success 200 {object} domain.CompleteResult "ok"
// @Router /challenges/{challengeID}/complete [post]
func (h *handlers) complete(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Complete(r.Context(), uid, chi.URLParam(r, "challengeID"))
}
