// Package service contains challenge workflows
package service

import (
	"context"
	"time"

	"reclaim/internal/modkit/repokit"
	perr "reclaim/internal/platform/errors"
	"reclaim/internal/services/api/challenges/domain"
	"reclaim/internal/services/api/challenges/repo"
)

// Service defines the challenges service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the challenges service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a challenges service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("challenges.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("challenges.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// BySection returns one section's challenges with completion state
func (s *Svc) BySection(ctx context.Context, userID, section string) ([]domain.ChallengeView, error) {
	if !validSection(section) {
		return nil, perr.InvalidArgf("unknown section %q", section)
	}
	done, err := s.Repo.Completed(ctx, userID)
	if err != nil {
		return nil, err
	}
	var out []domain.ChallengeView
	for _, c := range domain.Catalog() {
		if c.Section != section {
			continue
		}
		view := domain.ChallengeView{
			ID:           c.ID,
			Section:      c.Section,
			SectionLabel: domain.SectionLabel(c.Section),
			Title:        c.Title,
			Points:       c.Points,
		}
		if at, ok := done[c.ID]; ok {
			view.Completed = true
			view.CompletedAt = at.Format(time.RFC3339)
		}
		out = append(out, view)
	}
	return out, nil
}

// Complete awards a challenge once; a replay is a conflict, not a second award
func (s *Svc) Complete(ctx context.Context, userID, challengeID string) (domain.CompleteResult, error) {
	c, ok := domain.Find(challengeID)
	if !ok {
		return domain.CompleteResult{}, perr.NotFoundf("challenge %s", challengeID)
	}
	fresh, err := s.Repo.InsertCompletion(ctx, userID, c.ID, c.Points)
	if err != nil {
		return domain.CompleteResult{}, err
	}
	if !fresh {
		return domain.CompleteResult{}, perr.Conflictf("challenge %s already completed", c.ID)
	}
	total, err := s.Repo.TotalPoints(ctx, userID)
	if err != nil {
		return domain.CompleteResult{}, err
	}
	return domain.CompleteResult{ID: c.ID, Points: c.Points, TotalPoints: total}, nil
}

func validSection(section string) bool {
	for _, s := range domain.Sections() {
		if s == section {
			return true
		}
	}
	return false
}
