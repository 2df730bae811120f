package module

import (
	"time"

	"reclaim/internal/platform/config"
)

// Options controls the rollover sweep worker
type Options struct {
	Concurrency int
	BatchSize   int
	Tick        time.Duration
	Lease       time.Duration
	Timezone    string
}

// FromConfig reads with ROLLOVER_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("ROLLOVER_")
	return Options{
		Concurrency: c.MayInt("WORKER_CONCURRENCY", 4),
		BatchSize:   c.MayInt("BATCH_SIZE", 64),
		Tick:        c.MayDuration("TICK", time.Minute),
		Lease:       c.MayDuration("LEASE", 60*time.Second),
		Timezone:    c.MayString("TIMEZONE", "UTC"),
	}
}
