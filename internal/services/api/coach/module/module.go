// Package module wires coach into the API using modkit
package module

import (
	"context"
	"net/http"

	"reclaim/internal/adapters/gemini"
	"reclaim/internal/adapters/motivation"
	modkit "reclaim/internal/modkit"
	"reclaim/internal/modkit/httpkit"
	"reclaim/internal/platform/logger"
	str "reclaim/internal/platform/strings"
	"reclaim/internal/services/api/coach/domain"
	coachhttp "reclaim/internal/services/api/coach/http"
	coachsvc "reclaim/internal/services/api/coach/service"
)

// Ports declares the cross module dependencies this module accepts
type Ports struct {
	Program domain.ProgramReader
	Logs    domain.LogReader
}

// Module implements the coach module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc coachsvc.Service
}

// New constructs the coach module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("coach"),
		modkit.WithPrefix("/coach"),
	}, opts...)...)

	in, ok := b.Ports.(Ports)
	if !ok {
		panic("coach module requires Ports{Program, Logs}")
	}

	cfg := deps.Cfg.Prefix("COACH_")

	var quotes domain.QuoteFetcher
	if url := cfg.MayString("MOTIVATION_URL", ""); url != "" {
		quotes = quoteAdapter{c: motivation.NewClient(motivation.Options{BaseURL: url})}
	}

	var gen domain.Generator
	if key := cfg.MayString("GEMINI_API_KEY", ""); key != "" {
		g, err := gemini.NewClient(context.Background(), key, cfg.MayString("GEMINI_MODEL", ""))
		if err != nil {
			logger.Named("coach").Warn().Err(err).Msg("gemini unavailable, insights degraded")
		} else {
			gen = g
		}
	}

	svc := coachsvc.New(in.Program, in.Logs, quotes, gen)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptCoachPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		coachhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// quoteAdapter narrows the motivation client to the domain port
type quoteAdapter struct{ c *motivation.Client }

func (a quoteAdapter) FetchQuote(ctx context.Context, streak int, name, goal string) (string, error) {
	return a.c.Fetch(ctx, motivation.Request{Streak: streak, Name: name, Goal: goal})
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
