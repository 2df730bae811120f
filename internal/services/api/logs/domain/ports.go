package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Append(ctx context.Context, userID string, in AppendInput) (EntryView, error)
	List(ctx context.Context, userID string, in ListInput) ([]EntryView, error)
	Counts(ctx context.Context, userID string) (CountsView, error)
}
