// Package service contains coach workflows
package service

import (
	"context"
	"encoding/json"
	"time"

	"reclaim/internal/core/streak"
	perr "reclaim/internal/platform/errors"
	"reclaim/internal/platform/logger"
	"reclaim/internal/services/api/coach/domain"
	logsdomain "reclaim/internal/services/api/logs/domain"
)

// FallbackMessage is served whenever the quote service cannot be reached
const FallbackMessage = "Stay strong! Every day is a new opportunity."

// insightLookbackDays bounds how much history goes into the prompt
const insightLookbackDays = 30

// Service defines the coach service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the coach service
type Svc struct {
	program domain.ProgramReader
	logs    domain.LogReader

	// quotes and gen are optional; nil means degraded output, never an error
	quotes domain.QuoteFetcher
	gen    domain.Generator

	now func() time.Time
}

// New constructs a coach service
func New(program domain.ProgramReader, logs domain.LogReader, quotes domain.QuoteFetcher, gen domain.Generator) *Svc {
	if program == nil {
		panic("coach.Service requires a non nil ProgramReader")
	}
	if logs == nil {
		panic("coach.Service requires a non nil LogReader")
	}
	return &Svc{program: program, logs: logs, quotes: quotes, gen: gen, now: time.Now}
}

// Motivation returns a personalized message, falling back to a canned one
func (s *Svc) Motivation(ctx context.Context, userID string) (domain.MotivationView, error) {
	var streakDays int
	var goal string
	if prog, err := s.program.Get(ctx, userID); err == nil {
		streakDays = prog.Streak
		goal = prog.Goal
	} else if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return domain.MotivationView{}, err
	}

	if s.quotes != nil {
		msg, err := s.quotes.FetchQuote(ctx, streakDays, "", goal)
		if err == nil {
			return domain.MotivationView{Message: msg, Source: domain.SourceCoach}, nil
		}
		logger.C(ctx).Warn().Err(err).Msg("quote service unavailable, serving fallback")
	}
	return domain.MotivationView{Message: FallbackMessage, Source: domain.SourceFallback}, nil
}

// Insights generates observations from the caller's recent history
func (s *Svc) Insights(ctx context.Context, userID string, in domain.InsightsInput) ([]domain.Insight, error) {
	loc := time.UTC
	if in.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(in.Timezone)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "unknown timezone %q", in.Timezone)
		}
	}
	today := streak.DateOf(s.now(), loc)
	from := today.AddDays(-(insightLookbackDays - 1))

	entries, err := s.logs.List(ctx, userID, logsdomain.ListInput{From: from.String(), To: today.String()})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []domain.Insight{startInsight()}, nil
	}

	if s.gen == nil {
		logger.C(ctx).Warn().Msg("insight generator not configured, serving degraded insight")
		return []domain.Insight{offlineInsight()}, nil
	}

	prompt, err := buildPrompt(ctx, s.program, userID, entries)
	if err != nil {
		return nil, err
	}
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("insight generation failed, serving degraded insight")
		return []domain.Insight{offlineInsight()}, nil
	}

	var insights []domain.Insight
	if err := json.Unmarshal([]byte(text), &insights); err != nil || len(insights) == 0 {
		logger.C(ctx).Warn().Err(err).Msg("insight response unparseable, serving degraded insight")
		return []domain.Insight{analysisInsight()}, nil
	}
	return insights, nil
}

func buildPrompt(ctx context.Context, program domain.ProgramReader, userID string, entries []logsdomain.EntryView) (string, error) {
	type userContext struct {
		Streak int    `json:"streak"`
		Phase  string `json:"phase,omitempty"`
		Goal   string `json:"goal,omitempty"`
	}
	uc := userContext{Goal: "Reduce usage"}
	if prog, err := program.Get(ctx, userID); err == nil {
		uc.Streak = prog.Streak
		uc.Phase = prog.Phase
		if prog.Goal != "" {
			uc.Goal = prog.Goal
		}
	} else if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return "", err
	}

	ucJSON, err := json.Marshal(uc)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "insight context marshal failed")
	}
	logsJSON, err := json.Marshal(entries)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "insight logs marshal failed")
	}

	return `You are an AI assistant helping someone reduce addictive behaviors. ` +
		`Based on the user data and logs provided, generate 3 to 5 personalized insights. ` +
		`User context: ` + string(ucJSON) + ` ` +
		`User logs (most recent first): ` + string(logsJSON) + ` ` +
		`Respond with only a JSON array of objects with keys "type" (one of info, warning, success), ` +
		`"insight" and "recommendation". No markdown, no prose.`, nil
}

func startInsight() domain.Insight {
	return domain.Insight{
		Type:           "info",
		Insight:        "Start Your Journey",
		Recommendation: "Log your data daily to receive personalized AI insights on your progress.",
	}
}

func offlineInsight() domain.Insight {
	return domain.Insight{
		Type:           "info",
		Insight:        "Coach Offline",
		Recommendation: "Insights are temporarily unavailable. Your logs are safe; check back soon.",
	}
}

func analysisInsight() domain.Insight {
	return domain.Insight{
		Type:           "info",
		Insight:        "Analysis Error",
		Recommendation: "We could not analyze your logs this time. Please try again later.",
	}
}
