// Package repo provides postgres access for programs
package repo

import (
	"context"
	"errors"
	"time"

	"reclaim/internal/modkit/repokit"
	perr "reclaim/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

// Record is the stored program row
type Record struct {
	UserID        string
	Phase         string
	ReductionDays int
	StartDate     time.Time
	EndDate       *time.Time
	Streak        int
	LastUpdated   *time.Time
	Goal          string
}

// Repo is the minimal persistence surface for programs
type Repo interface {
	Get(ctx context.Context, userID string) (Record, error)
	Upsert(ctx context.Context, rec Record) error

	// ApplyUpdate writes streak and last_updated_date only when the stored
	// last_updated_date still equals prevLast. Returns false when another
	// session already advanced the row (stale write, discarded)
	ApplyUpdate(ctx context.Context, userID string, streak int, last time.Time, prevLast *time.Time) (bool, error)

	// LogCountsByDate returns entries-per-day for the user's calendar
	LogCountsByDate(ctx context.Context, userID string) (map[string]int, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Get(ctx context.Context, userID string) (Record, error) {
	const sql = `
select user_id, phase, reduction_days, start_date, end_date, streak, last_updated_date, goal
from programs
where user_id = $1
`
	var rec Record
	row := r.q.QueryRow(ctx, sql, userID)
	err := row.Scan(
		&rec.UserID, &rec.Phase, &rec.ReductionDays, &rec.StartDate,
		&rec.EndDate, &rec.Streak, &rec.LastUpdated, &rec.Goal,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, perr.NotFoundf("program for user %s", userID)
		}
		return Record{}, perr.FromPostgres(err, "program get")
	}
	return rec, nil
}

func (r *queries) Upsert(ctx context.Context, rec Record) error {
	const sql = `
insert into programs (user_id, phase, reduction_days, start_date, end_date, streak, last_updated_date, goal, updated_at)
values ($1, $2, $3, $4, $5, 0, null, $6, now())
on conflict (user_id) do update set
	phase = excluded.phase,
	reduction_days = excluded.reduction_days,
	start_date = excluded.start_date,
	end_date = excluded.end_date,
	streak = 0,
	last_updated_date = null,
	goal = excluded.goal,
	updated_at = now()
`
	_, err := r.q.Exec(ctx, sql,
		rec.UserID, rec.Phase, rec.ReductionDays, rec.StartDate, rec.EndDate, rec.Goal,
	)
	if err != nil {
		return perr.FromPostgres(err, "program upsert")
	}
	return nil
}

func (r *queries) ApplyUpdate(
	ctx context.Context, userID string, streak int, last time.Time, prevLast *time.Time,
) (bool, error) {
	const sql = `
update programs
set streak = $2, last_updated_date = $3, updated_at = now()
where user_id = $1
and last_updated_date is not distinct from $4
`
	tag, err := r.q.Exec(ctx, sql, userID, streak, last, prevLast)
	if err != nil {
		return false, perr.FromPostgres(err, "program apply update")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) LogCountsByDate(ctx context.Context, userID string) (map[string]int, error) {
	const sql = `
select to_char(log_date, 'YYYY-MM-DD'), count(1)
from logs
where user_id = $1
group by log_date
`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, perr.FromPostgres(err, "program log counts")
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var day string
		var n int
		if err := rows.Scan(&day, &n); err != nil {
			return nil, err
		}
		out[day] = n
	}
	return out, rows.Err()
}
