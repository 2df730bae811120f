package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Badge is one catalog definition; unlock state lives in postgres
type Badge struct {
	Key           string
	Title         string
	Description   string
	Hint          string
	Category      string
	Ord           int
	ThresholdDays int
}

// catalog is ordered by category then ord; keep it that way
var catalog = []Badge{
	{Key: "first-day", Title: "First Day", Description: "One clean day on the books", Hint: "Check in after your first clean day", Category: "streak", Ord: 1, ThresholdDays: 1},
	{Key: "three-days", Title: "Three Days", Description: "Three clean days in a row", Hint: "Hold the line for three days", Category: "streak", Ord: 2, ThresholdDays: 3},
	{Key: "one-week", Title: "One Week Strong", Description: "Seven clean days in a row", Hint: "Keep your streak going for a week", Category: "streak", Ord: 3, ThresholdDays: 7},
	{Key: "fortnight", Title: "Fortnight", Description: "Fifteen clean days in a row", Hint: "Two weeks is closer than you think", Category: "streak", Ord: 4, ThresholdDays: 15},
	{Key: "one-month", Title: "One Month", Description: "Thirty clean days in a row", Hint: "A full month changes habits", Category: "streak", Ord: 5, ThresholdDays: 30},
	{Key: "two-months", Title: "Two Months", Description: "Sixty clean days in a row", Hint: "Keep stacking clean months", Category: "streak", Ord: 6, ThresholdDays: 60},
	{Key: "quarter", Title: "Quarter Master", Description: "Ninety clean days in a row", Hint: "Ninety days rewires the brain", Category: "streak", Ord: 7, ThresholdDays: 90},
}

// Catalog returns a copy of the badge definitions
func Catalog() []Badge {
	out := make([]Badge, len(catalog))
	copy(out, catalog)
	return out
}

var titler = cases.Title(language.English)

// CategoryLabel renders a category key as a display heading
func CategoryLabel(category string) string { return titler.String(category) }
