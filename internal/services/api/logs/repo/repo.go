// Package repo provides postgres access for log entries
package repo

import (
	"context"
	"time"

	"reclaim/internal/modkit/repokit"
	perr "reclaim/internal/platform/errors"
)

// Record is a stored log entry
type Record struct {
	ID           string
	UserID       string
	LogDate      time.Time
	HoursWatched float64
	WatchSlot    string
	Mood         string
	Relapsed     bool
	Note         string
}

// Repo is the minimal persistence surface for logs
type Repo interface {
	Insert(ctx context.Context, rec Record) error
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]Record, error)
	CountsByDate(ctx context.Context, userID string) (map[string]int, error)
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

func (r *queries) Insert(ctx context.Context, rec Record) error {
	const sql = `
insert into logs (id, user_id, log_date, hours_watched, watch_slot, mood, relapsed, note, created_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, now())
`
	_, err := r.q.Exec(ctx, sql,
		rec.ID, rec.UserID, rec.LogDate, rec.HoursWatched, rec.WatchSlot, rec.Mood, rec.Relapsed, rec.Note,
	)
	if err != nil {
		return perr.FromPostgres(err, "log insert")
	}
	return nil
}

func (r *queries) ListRange(ctx context.Context, userID string, from, to time.Time) ([]Record, error) {
	const sql = `
select id, user_id, log_date, hours_watched, watch_slot, mood, relapsed, note
from logs
where user_id = $1
and log_date between $2 and $3
order by log_date asc, created_at asc
`
	rows, err := r.q.Query(ctx, sql, userID, from, to)
	if err != nil {
		return nil, perr.FromPostgres(err, "log list")
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.LogDate, &rec.HoursWatched,
			&rec.WatchSlot, &rec.Mood, &rec.Relapsed, &rec.Note,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *queries) CountsByDate(ctx context.Context, userID string) (map[string]int, error) {
	const sql = `
select to_char(log_date, 'YYYY-MM-DD'), count(1)
from logs
where user_id = $1
group by log_date
`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, perr.FromPostgres(err, "log counts")
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
