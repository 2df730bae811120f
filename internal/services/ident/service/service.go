// Package service provides the ident service implementation
package service

import (
	"context"
	"time"

	"reclaim/internal/modkit/repokit"
	perr "reclaim/internal/platform/errors"
	str "reclaim/internal/platform/strings"
	"reclaim/internal/services/ident/domain"
)

// Svc resolves bearer tokens against the sessions table
type Svc struct {
	Repo domain.Repo

	now func() time.Time
}

// New constructs the ident service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo]) *Svc {
	if db == nil {
		panic("ident.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("ident.Service requires a non-nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), now: time.Now}
}

// Resolve returns the user id behind a bearer token.
// Only the token digest touches the database
func (s *Svc) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	sess, ok, err := s.Repo.Lookup(ctx, str.HashID(token))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", perr.Unauthorizedf("invalid bearer token")
	}
	if !sess.ExpiresAt.After(s.now()) {
		return "", perr.Unauthorizedf("session expired")
	}
	return sess.UserID, nil
}
