package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context, userID string) ([]BadgeView, error)
	EvaluateUnlocks(ctx context.Context, userID string, streak int) ([]string, error)
}
