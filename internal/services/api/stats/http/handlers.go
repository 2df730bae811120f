// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"reclaim/internal/modkit/httpkit"
	"reclaim/internal/services/api/stats/domain"
	svc "reclaim/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// daily watch hours for the bar chart
	httpkit.PostJSON[domain.WeeklyInput](r, "/weekly", h.weekly)

	// mood mix in window
	httpkit.PostJSON[domain.MoodsInput](r, "/moods", h.moods)

	// time-of-day heatmap
	httpkit.PostJSON[domain.SlotsInput](r, "/slots", h.slots)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /stats/weekly Stats statsWeekly
// @Summary Watch hours by day
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.WeeklyInput true "Query"
// @Success 200 {array} domain.WeeklyRow "ok"
// @Router /stats/weekly [post]
func (h *handlers) weekly(r *stdhttp.Request, in domain.WeeklyInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Weekly(r.Context(), uid, in)
}

// swagger:route POST /stats/moods Stats statsMoods
// @Summary Mood mix in window
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.MoodsInput true "Query"
// @Success 200 {array} domain.MoodsRow "ok"
// @Router /stats/moods [post]
func (h *handlers) moods(r *stdhttp.Request, in domain.MoodsInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Moods(r.Context(), uid, in)
}

// swagger:route POST /stats/slots Stats statsSlots
// @Summary Entries by time of day
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.SlotsInput true "Query"
// @Success 200 {array} domain.SlotsRow "ok"
// @Router /stats/slots [post]
func (h *handlers) slots(r *stdhttp.Request, in domain.SlotsInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Slots(r.Context(), uid, in)
}
