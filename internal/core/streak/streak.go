// Package streak derives streak updates and calendar annotations for a
// user's recovery program. Both operations are pure transforms over
// immutable snapshots: they never read a clock, never perform I/O, and
// given identical inputs produce identical outputs. The caller owns the
// conditional write that applies an Update (see services/api/program).
package streak

import (
	perr "reclaim/internal/platform/errors"
)

// Phase is the program mode
type Phase string

const (
	// PhaseReduction is a time-boxed target with a fixed end date
	PhaseReduction Phase = "reduction"
	// PhaseCommitment is an open-ended clean streak
	PhaseCommitment Phase = "commitment"
)

// Valid reports whether p is a known phase
func (p Phase) Valid() bool { return p == PhaseReduction || p == PhaseCommitment }

// Program is the reconciler's view of a user's program record.
// It is a snapshot DTO; the authoritative copy lives in the store.
type Program struct {
	Phase       Phase
	StartDate   Date
	EndDate     Date // zero when open-ended (commitment)
	Streak      int
	LastUpdated Date // zero before the first baseline
}

// Outcome classifies what ComputeUpdate decided
type Outcome int

const (
	// OutcomeNoop means the streak was already credited for today
	OutcomeNoop Outcome = iota
	// OutcomeBaseline means first run: record today without crediting a day
	OutcomeBaseline
	// OutcomeIncrement means a new day started and the streak advances by one
	OutcomeIncrement
	// OutcomeAnomaly means the record claims a day ahead of today (clock skew
	// or corrupted data); treated as a noop, never a decrement
	OutcomeAnomaly
)

// String names the outcome for logs
func (o Outcome) String() string {
	switch o {
	case OutcomeBaseline:
		return "baseline"
	case OutcomeIncrement:
		return "increment"
	case OutcomeAnomaly:
		return "anomaly"
	default:
		return "noop"
	}
}

// Update is the patch ComputeUpdate asks the caller to apply.
// For OutcomeNoop and OutcomeAnomaly there is nothing to write.
type Update struct {
	Outcome     Outcome
	Streak      int  // value to persist when Outcome is OutcomeIncrement
	LastUpdated Date // value to persist for baseline and increment
}

// Applies reports whether the update carries a patch to persist
func (u Update) Applies() bool {
	return u.Outcome == OutcomeBaseline || u.Outcome == OutcomeIncrement
}

// ComputeUpdate decides the streak patch for today. At most one increment
// is ever produced per distinct value of today; calling again after the
// patch has been applied yields a noop. The caller must apply the patch
// conditionally: only when the stored last-updated date still equals
// p.LastUpdated, so concurrent sessions cannot double-credit a day.
func ComputeUpdate(p Program, today Date) (Update, error) {
	if today.IsZero() {
		return Update{}, perr.InvalidArgf("today is required")
	}
	if !p.StartDate.IsZero() && today.Before(p.StartDate) {
		return Update{}, perr.Newf(perr.ErrorCodeInvalidArgument,
			"today %s precedes program start %s", today, p.StartDate)
	}

	switch {
	case p.LastUpdated.IsZero():
		return Update{Outcome: OutcomeBaseline, Streak: p.Streak, LastUpdated: today}, nil
	case p.LastUpdated.Equal(today):
		return Update{Outcome: OutcomeNoop, Streak: p.Streak, LastUpdated: p.LastUpdated}, nil
	case p.LastUpdated.After(today):
		// never roll the streak back; surface the anomaly to the caller's logs
		return Update{Outcome: OutcomeAnomaly, Streak: p.Streak, LastUpdated: p.LastUpdated}, nil
	default:
		return Update{Outcome: OutcomeIncrement, Streak: p.Streak + 1, LastUpdated: today}, nil
	}
}
