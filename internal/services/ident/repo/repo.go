// Package repo provides Postgres bindings for domain.Repo
package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"reclaim/internal/modkit/repokit"
	perr "reclaim/internal/platform/errors"
	"reclaim/internal/services/ident/domain"
)

type (
	// PG is a Postgres binder for domain.Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// Compile-time assertion: queries implements domain.Repo
var _ domain.Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

func (r *queries) Lookup(ctx context.Context, tokenHash string) (domain.Session, bool, error) {
	const sql = `
select user_id, expires_at
from sessions
where token_hash = $1
`
	var s domain.Session
	err := r.q.QueryRow(ctx, sql, tokenHash).Scan(&s.UserID, &s.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, perr.FromPostgres(err, "session lookup")
	}
	return s, true, nil
}
