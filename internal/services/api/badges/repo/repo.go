// Package repo provides postgres access for achievements
package repo

import (
	"context"
	"time"

	"reclaim/internal/modkit/repokit"
	perr "reclaim/internal/platform/errors"
)

// Repo is the minimal persistence surface for achievements
type Repo interface {
	Unlocked(ctx context.Context, userID string) (map[string]time.Time, error)
	InsertUnlocks(ctx context.Context, userID string, keys []string) ([]string, error)
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

func (r *queries) Unlocked(ctx context.Context, userID string) (map[string]time.Time, error) {
	const sql = `
select badge_key, unlocked_at
from achievements
where user_id = $1
`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, perr.FromPostgres(err, "achievements list")
	}
	defer rows.Close()

	out := make(map[string]time.Time)
	for rows.Next() {
		var key string
		var at time.Time
		if err := rows.Scan(&key, &at); err != nil {
			return nil, err
		}
		out[key] = at
	}
	return out, rows.Err()
}

// InsertUnlocks writes the given keys and reports which were new.
// Replays are absorbed by the conflict clause so unlock stays idempotent
func (r *queries) InsertUnlocks(ctx context.Context, userID string, keys []string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	const sql = `
insert into achievements (user_id, badge_key, unlocked_at)
select $1, k, now() from unnest($2::text[]) as k
on conflict (user_id, badge_key) do nothing
returning badge_key
`
	rows, err := r.q.Query(ctx, sql, userID, keys)
	if err != nil {
		return nil, perr.FromPostgres(err, "achievements insert")
	}
	defer rows.Close()

	var fresh []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		fresh = append(fresh, key)
	}
	return fresh, rows.Err()
}
