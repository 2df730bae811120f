package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context) ([]BookView, error)
	Add(ctx context.Context, userID string, in AddBookInput) (BookView, error)
}
