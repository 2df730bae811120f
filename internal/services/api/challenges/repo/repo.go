// Package repo provides postgres access for completed challenges
package repo

import (
	"context"
	"time"

	"reclaim/internal/modkit/repokit"
	perr "reclaim/internal/platform/errors"
)

// Repo is the minimal persistence surface for challenge completion
type Repo interface {
	Completed(ctx context.Context, userID string) (map[string]time.Time, error)
	InsertCompletion(ctx context.Context, userID, challengeID string, points int) (bool, error)
	TotalPoints(ctx context.Context, userID string) (int, error)
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

func (r *queries) Completed(ctx context.Context, userID string) (map[string]time.Time, error) {
	const sql = `
select challenge_id, completed_at
from completed_challenges
where user_id = $1
`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, perr.FromPostgres(err, "completion list")
	}
	defer rows.Close()

	out := make(map[string]time.Time)
	for rows.Next() {
		var id string
		var at time.Time
		if err := rows.Scan(&id, &at); err != nil {
			return nil, err
		}
		out[id] = at
	}
	return out, rows.Err()
}

// InsertCompletion reports false when the challenge was already completed
func (r *queries) InsertCompletion(ctx context.Context, userID, challengeID string, points int) (bool, error) {
	const sql = `
insert into completed_challenges (user_id, challenge_id, points, completed_at)
values ($1, $2, $3, now())
on conflict (user_id, challenge_id) do nothing
`
	tag, err := r.q.Exec(ctx, sql, userID, challengeID, points)
	if err != nil {
		return false, perr.FromPostgres(err, "completion insert")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) TotalPoints(ctx context.Context, userID string) (int, error) {
	const sql = `
select coalesce(sum(points), 0) from completed_challenges where user_id = $1
`
	var n int
	if err := r.q.QueryRow(ctx, sql, userID).Scan(&n); err != nil {
		return 0, perr.FromPostgres(err, "points total")
	}
	return n, nil
}
