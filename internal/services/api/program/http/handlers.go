// Package http provides http transport for programs
package http

import (
	stdhttp "net/http"

	"reclaim/internal/modkit/httpkit"
	"reclaim/internal/services/api/program/domain"
	svc "reclaim/internal/services/api/program/service"
)

// Register mounts program endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// onboarding and read model
	httpkit.PostJSON[domain.OnboardInput](r, "/", h.onboard)
	httpkit.Get(r, "/", h.get)

	// daily check-in and calendar annotations
	httpkit.PostJSON[domain.CheckinInput](r, "/checkin", h.checkin)
	httpkit.Get(r, "/calendar", h.calendar)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /program Program programOnboard
// @Summary Start or restart a program
// @Tags Program
// @Accept json
// @Produce json
// @Param payload body domain.OnboardInput true "Program setup"
// @Success 200 {object} domain.ProgramView "ok"
// @Router /program [post]
func (h *handlers) onboard(r *stdhttp.Request, in domain.OnboardInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Onboard(r.Context(), uid, in)
}

// swagger:route GET /program Program programGet
// @Summary Current program
// @Tags Program
// @Produce json
// @Success 200 {object} domain.ProgramView "ok"
// @Router /program [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), uid)
}

// swagger:route POST /program/checkin Program programCheckin
// @Summary Credit today against the streak
// @Tags Program
// @Accept json
// @Produce json
// @Param payload body domain.CheckinInput true "Caller zone"
// @Success 200 {object} domain.CheckinResult "ok"
// @Router /program/checkin [post]
func (h *handlers) checkin(r *stdhttp.Request, in domain.CheckinInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Checkin(r.Context(), uid, in)
}

// swagger:route GET /program/calendar Program programCalendar
// @Summary Per-day calendar annotations
// @Tags Program
// @Produce json
// @Param timezone query string false "IANA zone for the caller's today"
// @Success 200 {object} domain.CalendarView "ok"
// @Router /program/calendar [get]
func (h *handlers) calendar(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Calendar(r.Context(), uid, r.URL.Query().Get("timezone"))
}
