// Package service implements the nightly streak sweep
package service

import (
	"context"
	"time"

	"reclaim/internal/core/streak"
	"reclaim/internal/modkit"
	"reclaim/internal/modkit/repokit"
	"reclaim/internal/platform/logger"

	dom "reclaim/internal/services/rollover/domain"
	rrepo "reclaim/internal/services/rollover/repo"
)

// Service is the sweep worker contract
type Service interface {
	dom.WorkerPort
}

// Config controls the worker
type Config struct {
	Concurrency int
	BatchSize   int
	Tick        time.Duration
	Lease       time.Duration
	Timezone    string
}

// Svc implements the sweep
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[rrepo.Repo]
	repo   rrepo.Repo

	badges dom.BadgeUnlocker
	cfg    Config
	loc    *time.Location

	now func() time.Time
}

// New constructs the service. badges may be nil; unlock evaluation is then skipped
func New(deps modkit.Deps, cfg Config, badges dom.BadgeUnlocker) *Svc {
	b := rrepo.NewPG()
	loc := time.UTC
	if cfg.Timezone != "" {
		l, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			logger.Named("rollover").Warn().Str("tz", cfg.Timezone).Msg("unknown sweep timezone, using UTC")
		} else {
			loc = l
		}
	}
	return &Svc{
		db:     deps.PG,
		binder: b,
		repo:   b.Bind(deps.PG),
		badges: badges,
		cfg:    cfg,
		loc:    loc,
		now:    time.Now,
	}
}

// sweepOne reconciles a single leased program for today.
// Lost conditional writes are expected when a check-in lands first
func (s *Svc) sweepOne(ctx context.Context, l rrepo.Lease, today streak.Date) error {
	log := logger.Named("rollover")

	p := streak.Program{
		Phase:     streak.Phase(l.Phase),
		StartDate: streak.DateOf(l.StartDate, time.UTC),
		Streak:    l.Streak,
	}
	if l.EndDate != nil {
		p.EndDate = streak.DateOf(*l.EndDate, time.UTC)
	}
	if l.LastUpdated != nil {
		p.LastUpdated = streak.DateOf(*l.LastUpdated, time.UTC)
	}

	u, err := streak.ComputeUpdate(p, today)
	if err != nil {
		return err
	}
	if !u.Applies() {
		return nil
	}

	applied, err := s.repo.ApplyUpdate(ctx, l.UserID, u.Streak, dateToTime(u.LastUpdated), l.LastUpdated)
	if err != nil {
		return err
	}
	if !applied {
		log.Debug().Str("user", l.UserID).Msg("stale sweep write discarded")
		return nil
	}

	if s.badges != nil && u.Outcome == streak.OutcomeIncrement {
		if _, err := s.badges.EvaluateUnlocks(ctx, l.UserID, u.Streak); err != nil {
			log.Error().Err(err).Str("user", l.UserID).Msg("badge evaluation failed")
		}
	}
	return nil
}

func dateToTime(d streak.Date) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", d.String(), time.UTC)
	return t
}
