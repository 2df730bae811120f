package service

import (
	"context"
	"time"

	"reclaim/internal/core/streak"
	"reclaim/internal/platform/logger"
)

// Run starts the worker loop that rolls stale streaks forward
func (s *Svc) Run(ctx context.Context) error {
	log := logger.Named("rollover-worker")
	sem := make(chan struct{}, max(1, s.cfg.Concurrency))
	ticker := time.NewTicker(s.cfg.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			today := streak.DateOf(s.now(), s.loc)

			// lease a small batch; process concurrently with a simple semaphore
			leases, err := s.repo.LeaseStale(ctx, dateToTime(today), s.cfg.BatchSize, s.cfg.Lease)
			if err != nil {
				log.Error().Err(err).Msg("lease stale programs failed")
				continue
			}
			for i := range leases {
				sem <- struct{}{}
				l := leases[i]
				go func() {
					defer func() { <-sem }()
					if err := s.sweepOne(ctx, l, today); err != nil {
						log.Warn().Err(err).Str("user", l.UserID).Msg("sweep failed")
					}
				}()
			}
		}
	}
}
