package streak

// Annotation marks one calendar day for display. A day carries either a
// logged-entry count or the clean flag, never both.
type Annotation struct {
	LoggedCount int  `json:"logged_count,omitempty"`
	Clean       bool `json:"clean,omitempty"`
}

// BuildCalendar computes the display annotation for every day of the
// active range. Days with log entries get their count; past in-range days
// without entries are marked clean; future days and days outside the
// range stay absent. Log dates outside the range are still emitted with
// their count: real logs always win over range bounds (a user who moved
// their start date keeps their history visible).
//
// The result is rebuilt from scratch on every call and never aliases its
// inputs, so stale program/log snapshot pairs cannot corrupt each other.
func BuildCalendar(p Program, logCounts map[Date]int, today Date) map[Date]Annotation {
	out := make(map[Date]Annotation, len(logCounts))

	// nothing to show before onboarding completes
	if p.StartDate.IsZero() {
		return out
	}

	for d, n := range logCounts {
		if n <= 0 {
			continue
		}
		out[d] = Annotation{LoggedCount: n}
	}

	if !p.Phase.Valid() || today.IsZero() || today.Before(p.StartDate) {
		return out
	}

	upper := today
	if !p.EndDate.IsZero() {
		upper = MinDate(p.EndDate, today)
	}
	for d := p.StartDate; !d.After(upper); d = d.Next() {
		if _, ok := out[d]; ok {
			continue
		}
		out[d] = Annotation{Clean: true}
	}
	return out
}
