package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"reclaim/internal/modkit"
	"reclaim/internal/modkit/module"
	"reclaim/internal/platform/config"
	"reclaim/internal/platform/logger"
	"reclaim/internal/platform/store"

	badgesrepo "reclaim/internal/services/api/badges/repo"
	badgessvc "reclaim/internal/services/api/badges/service"
	rollovermod "reclaim/internal/services/rollover/module"
)

func mustSetEnv(key, val string) {
	if val != "" {
		_ = os.Setenv(key, val)
	}
}

func main() {
	root := config.New()
	dbCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         dbCfg.MustString("DBURL"),
			MaxConns:    int32(dbCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: dbCfg.MayInt("SLOW_MS", 500),
			LogSQL:      dbCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var (
		fConc  = flag.Int("concurrency", 4, "worker concurrency")
		fBatch = flag.Int("batch", 64, "DB lease batch size per poll")
		fTick  = flag.String("tick", "1m", "poll interval")
		fLease = flag.String("lease", "60s", "per-row lease duration")
		fTz    = flag.String("tz", "UTC", "civil day timezone for the sweep")
	)
	flag.Parse()

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	// Export as env so module can also read via FromConfig
	mustSetEnv("ROLLOVER_WORKER_CONCURRENCY", fmt.Sprintf("%d", *fConc))
	mustSetEnv("ROLLOVER_BATCH_SIZE", fmt.Sprintf("%d", *fBatch))
	mustSetEnv("ROLLOVER_TICK", *fTick)
	mustSetEnv("ROLLOVER_LEASE", *fLease)
	mustSetEnv("ROLLOVER_TIMEZONE", *fTz)

	// applied increments feed badge unlocks, same as interactive check-ins
	badges := badgessvc.New(st.PG, badgesrepo.NewPG())

	mod := rollovermod.New(deps, rollovermod.FromConfig(root), badges)
	module.Register(mod.Name(), mod.Ports())

	ports := module.MustPortsOf[rollovermod.Ports](mod)

	if err := ports.Worker.Run(context.Background()); err != nil {
		l.Fatal().Err(err).Msg("rollover worker failed")
	}
}
