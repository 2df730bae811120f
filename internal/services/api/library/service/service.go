// Package service contains library workflows
package service

import (
	"context"
	"time"

	"reclaim/internal/modkit/repokit"
	"reclaim/internal/services/api/library/domain"
	"reclaim/internal/services/api/library/repo"

	"github.com/google/uuid"
)

// Service defines the library service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the library service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a library service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("library.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("library.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List returns the shelf, alphabetical by title
func (s *Svc) List(ctx context.Context) ([]domain.BookView, error) {
	recs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.BookView, 0, len(recs))
	for _, rec := range recs {
		out = append(out, view(rec))
	}
	return out, nil
}

// Add registers a book uploaded by the caller
func (s *Svc) Add(ctx context.Context, userID string, in domain.AddBookInput) (domain.BookView, error) {
	rec := repo.Record{
		ID:         uuid.NewString(),
		Title:      in.Title,
		Author:     in.Author,
		PDFURL:     in.PDFURL,
		CoverURL:   in.CoverURL,
		UploadedBy: userID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, rec); err != nil {
		return domain.BookView{}, err
	}
	return view(rec), nil
}

func view(rec repo.Record) domain.BookView {
	return domain.BookView{
		ID:         rec.ID,
		Title:      rec.Title,
		Author:     rec.Author,
		PDFURL:     rec.PDFURL,
		CoverURL:   rec.CoverURL,
		UploadedBy: rec.UploadedBy,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
	}
}
