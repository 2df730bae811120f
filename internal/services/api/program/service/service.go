// Package service contains program workflows around the streak reconciler
package service

import (
	"context"
	"time"

	"reclaim/internal/core/streak"
	"reclaim/internal/modkit/repokit"
	perr "reclaim/internal/platform/errors"
	"reclaim/internal/platform/logger"
	ptime "reclaim/internal/platform/time"
	"reclaim/internal/services/api/program/domain"
	"reclaim/internal/services/api/program/repo"
)

// Service defines the program service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the program service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	// badges is optional; nil disables unlock evaluation
	badges domain.BadgeUnlocker

	// now is the single clock read; tests override it
	now func() time.Time
}

// New constructs a program service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], badges domain.BadgeUnlocker) *Svc {
	if db == nil {
		panic("program.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("program.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		badges: badges,
		now:    time.Now,
	}
}

// Onboard starts or restarts the user's program. Restarting resets the
// streak and the last credited day
func (s *Svc) Onboard(ctx context.Context, userID string, in domain.OnboardInput) (domain.ProgramView, error) {
	phase := streak.Phase(in.Phase)
	if !phase.Valid() {
		return domain.ProgramView{}, perr.InvalidArgf("unknown phase %q", in.Phase)
	}
	if phase == streak.PhaseReduction && in.ReductionDays == 0 {
		return domain.ProgramView{}, perr.WithField(
			perr.InvalidArgf("reduction_days is required for the reduction phase"), "reduction_days")
	}

	loc, err := resolveZone(in.Timezone)
	if err != nil {
		return domain.ProgramView{}, err
	}

	start := streak.DateOf(s.now(), loc)
	if in.StartDate != "" {
		start, err = streak.ParseDate(in.StartDate)
		if err != nil {
			return domain.ProgramView{}, err
		}
	}

	rec := repo.Record{
		UserID:    userID,
		Phase:     string(phase),
		StartDate: dateToTime(start),
		Goal:      in.Goal,
	}
	if phase == streak.PhaseReduction {
		rec.ReductionDays = in.ReductionDays
		rec.EndDate = ptime.Ptr(dateToTime(start.AddDays(in.ReductionDays)))
	}

	if err := s.Repo.Upsert(ctx, rec); err != nil {
		return domain.ProgramView{}, err
	}
	return viewFromRecord(rec), nil
}

// Get returns the user's program or not found
func (s *Svc) Get(ctx context.Context, userID string) (domain.ProgramView, error) {
	rec, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return domain.ProgramView{}, err
	}
	return viewFromRecord(rec), nil
}

// Checkin runs the reconciler for the caller's civil day and conditionally
// applies the patch. Losing the conditional write to a concurrent session is
// reported as stale, never as an error
func (s *Svc) Checkin(ctx context.Context, userID string, in domain.CheckinInput) (domain.CheckinResult, error) {
	loc, err := resolveZone(in.Timezone)
	if err != nil {
		return domain.CheckinResult{}, err
	}

	rec, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return domain.CheckinResult{}, err
	}

	p := programFromRecord(rec)
	today := streak.DateOf(s.now(), loc)

	u, err := streak.ComputeUpdate(p, today)
	if err != nil {
		return domain.CheckinResult{}, err
	}

	res := domain.CheckinResult{
		Status:      domain.CheckinNoop,
		Outcome:     u.Outcome.String(),
		Streak:      rec.Streak,
		LastUpdated: formatDate(p.LastUpdated),
	}
	if u.Outcome == streak.OutcomeAnomaly {
		logger.C(ctx).Warn().
			Str("user", userID).
			Str("last_updated", p.LastUpdated.String()).
			Str("today", today.String()).
			Msg("streak record is ahead of the caller's day; leaving it alone")
	}
	if !u.Applies() {
		return res, nil
	}

	applied, err := s.Repo.ApplyUpdate(ctx, userID, u.Streak, dateToTime(u.LastUpdated), rec.LastUpdated)
	if err != nil {
		return domain.CheckinResult{}, err
	}
	if !applied {
		// another session credited the day first; their write stands
		logger.C(ctx).Debug().Str("user", userID).Msg("stale streak write discarded")
		res.Status = domain.CheckinStale
		return res, nil
	}

	res.Status = domain.CheckinApplied
	res.Streak = u.Streak
	res.LastUpdated = u.LastUpdated.String()

	if s.badges != nil && u.Outcome == streak.OutcomeIncrement {
		unlocked, err := s.badges.EvaluateUnlocks(ctx, userID, u.Streak)
		if err != nil {
			// badge bookkeeping must not undo a successful check-in
			logger.C(ctx).Error().Err(err).Str("user", userID).Msg("badge evaluation failed")
		} else {
			res.Unlocked = unlocked
		}
	}
	return res, nil
}

// Calendar builds per-day annotations for the user's program range
func (s *Svc) Calendar(ctx context.Context, userID, timezone string) (domain.CalendarView, error) {
	loc, err := resolveZone(timezone)
	if err != nil {
		return domain.CalendarView{}, err
	}

	rec, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return domain.CalendarView{}, err
	}

	rawCounts, err := s.Repo.LogCountsByDate(ctx, userID)
	if err != nil {
		return domain.CalendarView{}, err
	}
	counts := make(map[streak.Date]int, len(rawCounts))
	for day, n := range rawCounts {
		d, err := streak.ParseDate(day)
		if err != nil {
			// a malformed stored date should not blank the whole calendar
			logger.C(ctx).Warn().Str("user", userID).Str("day", day).Msg("skipping unparsable log date")
			continue
		}
		counts[d] = n
	}

	annotated := streak.BuildCalendar(programFromRecord(rec), counts, streak.DateOf(s.now(), loc))

	out := domain.CalendarView{Days: make(map[string]domain.CalendarDay, len(annotated))}
	for d, a := range annotated {
		out.Days[d.String()] = domain.CalendarDay{LoggedCount: a.LoggedCount, Clean: a.Clean}
	}
	return out, nil
}

// helpers

func resolveZone(tz string) (*time.Location, error) {
	if tz == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "unknown timezone %q", tz)
	}
	return loc, nil
}

func programFromRecord(rec repo.Record) streak.Program {
	p := streak.Program{
		Phase:     streak.Phase(rec.Phase),
		StartDate: streak.DateOf(rec.StartDate, time.UTC),
		Streak:    rec.Streak,
	}
	if rec.EndDate != nil {
		p.EndDate = streak.DateOf(*rec.EndDate, time.UTC)
	}
	if rec.LastUpdated != nil {
		p.LastUpdated = streak.DateOf(*rec.LastUpdated, time.UTC)
	}
	return p
}

func viewFromRecord(rec repo.Record) domain.ProgramView {
	v := domain.ProgramView{
		Phase:     rec.Phase,
		StartDate: rec.StartDate.Format("2006-01-02"),
		Streak:    rec.Streak,
		Goal:      rec.Goal,
	}
	if rec.EndDate != nil {
		v.EndDate = rec.EndDate.Format("2006-01-02")
	}
	if rec.LastUpdated != nil {
		v.LastUpdated = rec.LastUpdated.Format("2006-01-02")
	}
	return v
}

func formatDate(d streak.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func dateToTime(d streak.Date) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", d.String(), time.UTC)
	return t
}
