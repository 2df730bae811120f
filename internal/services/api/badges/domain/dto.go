// Package domain holds DTOs for badges http and service contracts
package domain

// BadgeView is one catalog entry with the caller's unlock state
type BadgeView struct {
	Key           string `json:"key" example:"one-week"`
	Title         string `json:"title" example:"One Week Strong"`
	Description   string `json:"description" example:"Seven clean days in a row"`
	Hint          string `json:"hint,omitempty" example:"Keep your streak going for a week"`
	Category      string `json:"category" example:"streak"`
	CategoryLabel string `json:"category_label" example:"Streak"`
	Ord           int    `json:"ord" example:"3"`
	ThresholdDays int    `json:"threshold_days" example:"7"`
	Unlocked      bool   `json:"unlocked" example:"true"`
	UnlockedAt    string `json:"unlocked_at,omitempty" example:"2026-09-14"`
}
