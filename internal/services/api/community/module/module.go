// Package module wires community into the API using modkit
package module

import (
	"net/http"

	modkit "reclaim/internal/modkit"
	"reclaim/internal/modkit/httpkit"
	str "reclaim/internal/platform/strings"
	comhttp "reclaim/internal/services/api/community/http"
	comrepo "reclaim/internal/services/api/community/repo"
	comsvc "reclaim/internal/services/api/community/service"
)

// Module implements the community module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc comsvc.Service
}

// New constructs the community module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("community"),
		modkit.WithPrefix("/community"),
	}, opts...)...)

	repo := comrepo.NewPG()
	svc := comsvc.New(deps.PG, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptCommunityPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		comhttp.Register(r, m.svc)
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
