// Package module wires programs into the API using modkit
package module

import (
	"net/http"

	modkit "reclaim/internal/modkit"
	"reclaim/internal/modkit/httpkit"
	str "reclaim/internal/platform/strings"
	"reclaim/internal/services/api/program/domain"
	proghttp "reclaim/internal/services/api/program/http"
	progrepo "reclaim/internal/services/api/program/repo"
	progsvc "reclaim/internal/services/api/program/service"
)

// Ports declares the cross module dependencies this module accepts
type Ports struct {
	Badges domain.BadgeUnlocker
}

// Module implements the program module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc progsvc.Service
}

// New constructs the program module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("program"),
		modkit.WithPrefix("/program"),
	}, opts...)...)

	var badges domain.BadgeUnlocker
	if in, ok := b.Ports.(Ports); ok {
		badges = in.Badges
	}

	repo := progrepo.NewPG()
	svc := progsvc.New(deps.PG, repo, badges)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptProgramPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		proghttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
