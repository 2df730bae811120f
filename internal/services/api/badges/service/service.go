// Package service contains badge workflows
package service

import (
	"context"

	"reclaim/internal/modkit/repokit"
	"reclaim/internal/services/api/badges/domain"
	"reclaim/internal/services/api/badges/repo"
)

// Service defines the badges service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the badges service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a badges service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("badges.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("badges.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List returns the catalog annotated with the caller's unlock state
func (s *Svc) List(ctx context.Context, userID string) ([]domain.BadgeView, error) {
	unlocked, err := s.Repo.Unlocked(ctx, userID)
	if err != nil {
		return nil, err
	}
	cat := domain.Catalog()
	out := make([]domain.BadgeView, 0, len(cat))
	for _, b := range cat {
		view := domain.BadgeView{
			Key:           b.Key,
			Title:         b.Title,
			Description:   b.Description,
			Hint:          b.Hint,
			Category:      b.Category,
			CategoryLabel: domain.CategoryLabel(b.Category),
			Ord:           b.Ord,
			ThresholdDays: b.ThresholdDays,
		}
		if at, ok := unlocked[b.Key]; ok {
			view.Unlocked = true
			view.UnlockedAt = at.Format("2006-01-02")
		}
		out = append(out, view)
	}
	return out, nil
}

// EvaluateUnlocks writes every badge the streak now qualifies for and
// returns only the newly earned keys
func (s *Svc) EvaluateUnlocks(ctx context.Context, userID string, streak int) ([]string, error) {
	var eligible []string
	for _, b := range domain.Catalog() {
		if b.ThresholdDays > 0 && streak >= b.ThresholdDays {
			eligible = append(eligible, b.Key)
		}
	}
	if len(eligible) == 0 {
		return nil, nil
	}
	return s.Repo.InsertUnlocks(ctx, userID, eligible)
}
