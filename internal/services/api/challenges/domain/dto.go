// Package domain holds DTOs for challenges http and service contracts
package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Challenge sections
const (
	SectionDaily   = "daily"
	SectionWeekly  = "weekly"
	SectionMonthly = "monthly"
)

// Sections lists the valid section keys in display order
func Sections() []string { return []string{SectionDaily, SectionWeekly, SectionMonthly} }

var titler = cases.Title(language.English)

// SectionLabel renders a section key as a display heading
func SectionLabel(section string) string { return titler.String(section) }

// Challenge is one catalog definition; completion state lives in postgres
type Challenge struct {
	ID      string
	Section string
	Title   string
	Points  int
}

// catalog is grouped by section; keep each section's order stable
var catalog = []Challenge{
	{ID: "daily-walk", Section: SectionDaily, Title: "Take a 20 minute walk outside", Points: 10},
	{ID: "daily-phone-free-hour", Section: SectionDaily, Title: "Spend one hour phone free before bed", Points: 10},
	{ID: "daily-gratitude", Section: SectionDaily, Title: "Write down three things you are grateful for", Points: 5},
	{ID: "weekly-digital-sabbath", Section: SectionWeekly, Title: "Take one full day away from screens", Points: 40},
	{ID: "weekly-reach-out", Section: SectionWeekly, Title: "Talk to a friend about how your week went", Points: 30},
	{ID: "weekly-exercise-three", Section: SectionWeekly, Title: "Exercise three times this week", Points: 35},
	{ID: "monthly-new-hobby", Section: SectionMonthly, Title: "Spend five hours on a new hobby this month", Points: 100},
	{ID: "monthly-clean-week", Section: SectionMonthly, Title: "Complete seven clean days in a row", Points: 120},
	{ID: "monthly-book", Section: SectionMonthly, Title: "Finish one book from the library", Points: 80},
}

// Catalog returns a copy of the challenge definitions
func Catalog() []Challenge {
	out := make([]Challenge, len(catalog))
	copy(out, catalog)
	return out
}

// Find returns the catalog entry with the given id
func Find(id string) (Challenge, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Challenge{}, false
}

// ChallengeView is one challenge with the caller's completion state
type ChallengeView struct {
	ID           string `json:"id" example:"daily-walk"`
	Section      string `json:"section" example:"daily"`
	SectionLabel string `json:"section_label" example:"Daily"`
	Title        string `json:"title" example:"Take a 20 minute walk outside"`
	Points       int    `json:"points" example:"10"`
	Completed    bool   `json:"completed" example:"false"`
	CompletedAt  string `json:"completed_at,omitempty" example:"2026-09-14T08:30:00Z"`
}

// CompleteResult reports the award for a completed challenge
type CompleteResult struct {
	ID          string `json:"id" example:"daily-walk"`
	Points      int    `json:"points" example:"10"`
	TotalPoints int    `json:"total_points" example:"185"`
}
