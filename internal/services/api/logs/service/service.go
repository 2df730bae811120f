// Package service contains log entry workflows
package service

import (
	"context"
	"time"

	"reclaim/internal/core/streak"
	"reclaim/internal/modkit/repokit"
	perr "reclaim/internal/platform/errors"
	"reclaim/internal/platform/logger"
	"reclaim/internal/platform/store"
	str "reclaim/internal/platform/strings"
	"reclaim/internal/services/api/logs/domain"
	"reclaim/internal/services/api/logs/repo"

	"github.com/google/uuid"
)

// LogEventsTable is the analytics mirror table in ClickHouse
const LogEventsTable = "reclaim.log_events"

// Service defines the logs service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the logs service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	// ch is optional; nil disables the analytics mirror
	ch store.Clickhouse

	now func() time.Time
}

// New constructs a logs service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], ch store.Clickhouse) *Svc {
	if db == nil {
		panic("logs.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("logs.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, ch: ch, now: time.Now}
}

// Append records one entry on the caller's current civil day
func (s *Svc) Append(ctx context.Context, userID string, in domain.AppendInput) (domain.EntryView, error) {
	loc := time.UTC
	if in.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(in.Timezone)
		if err != nil {
			return domain.EntryView{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "unknown timezone %q", in.Timezone)
		}
	}
	today := streak.DateOf(s.now(), loc)

	rec := repo.Record{
		ID:           uuid.NewString(),
		UserID:       userID,
		LogDate:      mustDayTime(today),
		HoursWatched: in.HoursWatched,
		WatchSlot:    in.WatchSlot,
		Mood:         in.Mood,
		Relapsed:     in.Relapsed,
		Note:         in.Note,
	}
	if err := s.Repo.Insert(ctx, rec); err != nil {
		return domain.EntryView{}, err
	}

	// analytics mirror is best effort; a CH outage never fails the append
	if s.ch != nil {
		row := []any{str.HashID(userID), today.String(), in.HoursWatched, in.WatchSlot, in.Mood, in.Relapsed}
		if err := s.ch.Insert(ctx, LogEventsTable, [][]any{row}); err != nil {
			logger.C(ctx).Warn().Err(err).Str("user", userID).Msg("log event mirror failed")
		}
	}

	return viewFromRecord(rec), nil
}

// List returns entries in the requested closed date range
func (s *Svc) List(ctx context.Context, userID string, in domain.ListInput) ([]domain.EntryView, error) {
	from, err := streak.ParseDate(in.From)
	if err != nil {
		return nil, err
	}
	to, err := streak.ParseDate(in.To)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, perr.InvalidArgf("range end %s precedes start %s", in.To, in.From)
	}

	recs, err := s.Repo.ListRange(ctx, userID, mustDayTime(from), mustDayTime(to))
	if err != nil {
		return nil, err
	}
	out := make([]domain.EntryView, 0, len(recs))
	for _, rec := range recs {
		out = append(out, viewFromRecord(rec))
	}
	return out, nil
}

// Counts returns entries-per-day for the calendar screen
func (s *Svc) Counts(ctx context.Context, userID string) (domain.CountsView, error) {
	counts, err := s.Repo.CountsByDate(ctx, userID)
	if err != nil {
		return domain.CountsView{}, err
	}
	if counts == nil {
		counts = map[string]int{}
	}
	return domain.CountsView{Counts: counts}, nil
}

func viewFromRecord(rec repo.Record) domain.EntryView {
	return domain.EntryView{
		ID:           rec.ID,
		LogDate:      rec.LogDate.Format("2006-01-02"),
		HoursWatched: rec.HoursWatched,
		WatchSlot:    rec.WatchSlot,
		Mood:         rec.Mood,
		Relapsed:     rec.Relapsed,
		Note:         rec.Note,
	}
}

func mustDayTime(d streak.Date) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", d.String(), time.UTC)
	return t
}
