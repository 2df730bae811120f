// Package service contains stats workflows
package service

import (
	"context"

	perr "reclaim/internal/platform/errors"
	str "reclaim/internal/platform/strings"
	"reclaim/internal/services/api/stats/domain"
	"reclaim/internal/services/api/stats/repo"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	Repo repo.Repo
}

// New constructs a stats service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("stats.Service requires a non nil Repo")
	}
	return &Svc{Repo: r}
}

// Weekly returns watch hours bucketed by day for the bar chart
func (s *Svc) Weekly(ctx context.Context, userID string, in domain.WeeklyInput) ([]domain.WeeklyRow, error) {
	if err := checkRange(in.Range); err != nil {
		return nil, err
	}
	rows, err := s.Repo.Weekly(ctx, str.HashID(userID), in.Range.Start, in.Range.End)
	if err != nil {
		return nil, err
	}
	out := make([]domain.WeeklyRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.WeeklyRow{Day: r.Day, Hours: r.Hours, Entries: r.Entries, Relapses: r.Relapses})
	}
	return out, nil
}

// Moods returns the mood mix in a given time window
func (s *Svc) Moods(ctx context.Context, userID string, in domain.MoodsInput) ([]domain.MoodsRow, error) {
	if err := checkRange(in.Range); err != nil {
		return nil, err
	}
	rows, err := s.Repo.Moods(ctx, str.HashID(userID), in.Range.Start, in.Range.End)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MoodsRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.MoodsRow{Mood: r.Mood, Entries: r.Entries})
	}
	return out, nil
}

// Slots returns entries bucketed by time of day for the heatmap
func (s *Svc) Slots(ctx context.Context, userID string, in domain.SlotsInput) ([]domain.SlotsRow, error) {
	if err := checkRange(in.Range); err != nil {
		return nil, err
	}
	rows, err := s.Repo.Slots(ctx, str.HashID(userID), in.Range.Start, in.Range.End)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SlotsRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.SlotsRow{Slot: r.Slot, Entries: r.Entries, Hours: r.Hours})
	}
	return out, nil
}

// checkRange rejects inverted windows; string compare works for ISO days
func checkRange(tr domain.TimeRange) error {
	if tr.End < tr.Start {
		return perr.InvalidArgf("range end %s precedes start %s", tr.End, tr.Start)
	}
	return nil
}
