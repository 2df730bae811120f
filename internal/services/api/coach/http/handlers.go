// Package http provides http transport for coach
package http

import (
	stdhttp "net/http"

	"reclaim/internal/modkit/httpkit"
	"reclaim/internal/services/api/coach/domain"
	svc "reclaim/internal/services/api/coach/service"
)

// Register mounts coach endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/motivation", h.motivation)
	httpkit.PostJSON[domain.InsightsInput](r, "/insights", h.insights)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /coach/motivation Coach coachMotivation
// @Summary Personalized motivational message
// @Tags Coach
// @Produce json
// @Success 200 {object} domain.MotivationView "ok"
// @Router /coach/motivation [get]
func (h *handlers) motivation(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Motivation(r.Context(), uid)
}

// swagger:route POST /coach/insights Coach coachInsights
// @Summary Generated insights from recent logs
// @Tags Coach
// @Accept json
// @Produce json
// @Param payload body domain.InsightsInput true "Options"
// @Success 200 {array} domain.Insight "ok"
// @Router /coach/insights [post]
func (h *handlers) insights(r *stdhttp.Request, in domain.InsightsInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Insights(r.Context(), uid, in)
}
