// Package domain defines the rollover worker seams
package domain

import "context"

// WorkerPort runs the nightly streak sweep until the context ends
type WorkerPort interface {
	Run(ctx context.Context) error
}

// BadgeUnlocker mirrors the badges module seam; returns only newly unlocked keys
type BadgeUnlocker interface {
	EvaluateUnlocks(ctx context.Context, userID string, streak int) ([]string, error)
}
