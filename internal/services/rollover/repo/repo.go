// Package repo provides postgres access for the rollover sweep
package repo

import (
	"context"
	"time"

	"reclaim/internal/modkit/repokit"
	perr "reclaim/internal/platform/errors"
)

// Lease is one program claimed by the sweep
type Lease struct {
	UserID      string
	Phase       string
	StartDate   time.Time
	EndDate     *time.Time
	Streak      int
	LastUpdated *time.Time
}

// Repo is the persistence surface of the sweep
type Repo interface {
	// LeaseStale claims up to limit programs whose last_updated_date is
	// behind today. A claimed row is invisible to other sweepers until
	// its lease expires
	LeaseStale(ctx context.Context, today time.Time, limit int, lease time.Duration) ([]Lease, error)

	// ApplyUpdate is the same conditional write the check-in path uses:
	// it lands only when last_updated_date still equals prevLast
	ApplyUpdate(ctx context.Context, userID string, streak int, last time.Time, prevLast *time.Time) (bool, error)
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

func (r *queries) LeaseStale(
	ctx context.Context, today time.Time, limit int, lease time.Duration,
) ([]Lease, error) {
	const sql = `
update programs
set rollover_leased_until = now() + $3
where user_id in (
	select user_id
	from programs
	where (last_updated_date is null or last_updated_date < $1)
	and (rollover_leased_until is null or rollover_leased_until < now())
	order by last_updated_date asc nulls first
	limit $2
	for update skip locked
)
returning user_id, phase, start_date, end_date, streak, last_updated_date
`
	rows, err := r.q.Query(ctx, sql, today, limit, lease)
	if err != nil {
		return nil, perr.FromPostgres(err, "rollover lease")
	}
	defer rows.Close()

	var out []Lease
	for rows.Next() {
		var l Lease
		if err := rows.Scan(&l.UserID, &l.Phase, &l.StartDate, &l.EndDate, &l.Streak, &l.LastUpdated); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *queries) ApplyUpdate(
	ctx context.Context, userID string, streak int, last time.Time, prevLast *time.Time,
) (bool, error) {
	const sql = `
update programs
set streak = $2, last_updated_date = $3, rollover_leased_until = null, updated_at = now()
where user_id = $1
and last_updated_date is not distinct from $4
`
	tag, err := r.q.Exec(ctx, sql, userID, streak, last, prevLast)
	if err != nil {
		return false, perr.FromPostgres(err, "rollover apply update")
	}
	return tag.RowsAffected() == 1, nil
}
