package domain

import (
	"context"

	logsdomain "reclaim/internal/services/api/logs/domain"
	progdomain "reclaim/internal/services/api/program/domain"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Motivation(ctx context.Context, userID string) (MotivationView, error)
	Insights(ctx context.Context, userID string, in InsightsInput) ([]Insight, error)
}

// ProgramReader is satisfied by the program module's port
type ProgramReader interface {
	Get(ctx context.Context, userID string) (progdomain.ProgramView, error)
}

// LogReader is satisfied by the logs module's port
type LogReader interface {
	List(ctx context.Context, userID string, in logsdomain.ListInput) ([]logsdomain.EntryView, error)
}

// QuoteFetcher asks an external service for a personalized message
type QuoteFetcher interface {
	FetchQuote(ctx context.Context, streak int, name, goal string) (string, error)
}

// Generator produces freeform text from a prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
