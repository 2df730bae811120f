// Package api provides the HTTP API for the application
package api

import (
	"context"

	"reclaim/internal/platform/config"
	"reclaim/internal/platform/logger"
	phttp "reclaim/internal/platform/net/http"
	"reclaim/internal/platform/store"

	"reclaim/internal/modkit"
	"reclaim/internal/modkit/httpkit"
	"reclaim/internal/modkit/module"
	"reclaim/internal/modkit/swaggerkit"

	badgesmod "reclaim/internal/services/api/badges/module"
	challengesmod "reclaim/internal/services/api/challenges/module"
	chatmod "reclaim/internal/services/api/chat/module"
	coachdomain "reclaim/internal/services/api/coach/domain"
	coachmod "reclaim/internal/services/api/coach/module"
	communitymod "reclaim/internal/services/api/community/module"
	librarymod "reclaim/internal/services/api/library/module"
	logsmod "reclaim/internal/services/api/logs/module"
	metamod "reclaim/internal/services/api/meta/module"
	progdomain "reclaim/internal/services/api/program/domain"
	progmod "reclaim/internal/services/api/program/module"
	statsmod "reclaim/internal/services/api/stats/module"

	identrepo "reclaim/internal/services/ident/repo"
	identsvc "reclaim/internal/services/ident/service"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Badges first so its unlock port can feed check-ins
	badges := badgesmod.New(deps)
	unlocker := module.MustPortsOf[progdomain.BadgeUnlocker](badges)

	program := progmod.New(
		deps,
		modkit.WithPorts(progmod.Ports{
			Badges: unlocker,
		}),
	)
	logs := logsmod.New(deps)

	// Coach reads the program snapshot and the log history of its caller
	coach := coachmod.New(
		deps,
		modkit.WithPorts(coachmod.Ports{
			Program: module.MustPortsOf[coachdomain.ProgramReader](program),
			Logs:    module.MustPortsOf[coachdomain.LogReader](logs),
		}),
	)

	protected := []module.Module{
		program,
		logs,
		statsmod.New(deps),
		coach,
		chatmod.New(deps),
		communitymod.New(deps),
		badges,
		challengesmod.New(deps),
		librarymod.New(deps),
	}

	// Bearer tokens resolve against the sessions table
	ident := identsvc.New(opt.Store.PG, identrepo.NewPG())
	auth := httpkit.NewPortFunc(func(token string) (string, error) {
		return ident.Resolve(context.Background(), token)
	})

	meta := metamod.New(deps)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		module.Register(meta.Name(), meta.Ports())
		meta.MountRoutes(api)

		httpkit.Protected(api, auth, func(secured httpkit.Router) {
			for _, m := range protected {
				// register each module's ports under its own name (for cross-module lookups)
				module.Register(m.Name(), m.Ports())

				// mount module routes under its Prefix()
				m.MountRoutes(secured)
			}
		})
	})
}
