// Package domain defines the core types and interfaces for the ident service
package domain

import (
	"context"
	"time"
)

// Session is one resolved bearer token
type Session struct {
	UserID    string
	ExpiresAt time.Time
}

// ResolverPort maps an opaque bearer token to a user id
type ResolverPort interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// Repo abstracts session lookups. Tokens are stored hashed, never raw
type Repo interface {
	Lookup(ctx context.Context, tokenHash string) (Session, bool, error)
}
