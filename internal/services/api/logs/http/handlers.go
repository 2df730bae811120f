// Package http provides http transport for log entries
package http

import (
	stdhttp "net/http"

	"reclaim/internal/modkit/httpkit"
	"reclaim/internal/services/api/logs/domain"
	svc "reclaim/internal/services/api/logs/service"
)

// Register mounts logs endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.AppendInput](r, "/", h.append)
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.Get(r, "/counts", h.counts)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /logs Logs logsAppend
// @Summary Record an entry for today
// @Tags Logs
// @Accept json
// @Produce json
// @Param payload body domain.AppendInput true "Entry"
// @Success 200 {object} domain.EntryView "ok"
// @Router /logs [post]
func (h *handlers) append(r *stdhttp.Request, in domain.AppendInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Append(r.Context(), uid, in)
}

// swagger:route POST /logs/list Logs logsList
// @Summary Entries in a date range
// @Tags Logs
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Range"
// @Success 200 {array} domain.EntryView "ok"
// @Router /logs/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), uid, in)
}

// swagger:route GET /logs/counts Logs logsCounts
// @Summary Entries-per-day counts
// @Tags Logs
// @Produce json
// @Success 200 {object} domain.CountsView "ok"
// @Router /logs/counts [get]
func (h *handlers) counts(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Counts(r.Context(), uid)
}
