package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Weekly(ctx context.Context, userID string, in WeeklyInput) ([]WeeklyRow, error)
	Moods(ctx context.Context, userID string, in MoodsInput) ([]MoodsRow, error)
	Slots(ctx context.Context, userID string, in SlotsInput) ([]SlotsRow, error)
}
