// Package repo provides clickhouse access for stats
package repo

import (
	"context"

	"reclaim/internal/platform/store"
)

// Repo is the minimal analytics surface for stats.
// All queries are scoped to a single hashed user id
type Repo interface {
	Weekly(ctx context.Context, userHID, start, end string) ([]WeeklyRow, error)
	Moods(ctx context.Context, userHID, start, end string) ([]MoodsRow, error)
	Slots(ctx context.Context, userHID, start, end string) ([]SlotsRow, error)
}

// WeeklyRow aggregates one civil day
type WeeklyRow struct {
	Day      string
	Hours    float64
	Entries  int64
	Relapses int64
}

// MoodsRow aggregates one mood bucket
type MoodsRow struct {
	Mood    string
	Entries int64
}

// SlotsRow aggregates one watch slot bucket
type SlotsRow struct {
	Slot    string
	Entries int64
	Hours   float64
}

type queries struct{ ch store.Clickhouse }

// NewCH wires a Clickhouse seam to the repo
func NewCH(ch store.Clickhouse) Repo { return &queries{ch: ch} }

// casts pin scan types; clickhouse-go is strict about column/dest pairing

func (r *queries) Weekly(ctx context.Context, userHID, start, end string) ([]WeeklyRow, error) {
	const sql = `
select toString(day), toFloat64(sum(hours_watched)), toInt64(count()), toInt64(countIf(relapsed))
from reclaim.log_events
where user_hid = ? and day between ? and ?
group by day
order by day asc
`
	rows, err := r.ch.Query(ctx, sql, userHID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WeeklyRow
	for rows.Next() {
		var rr WeeklyRow
		if err := rows.Scan(&rr.Day, &rr.Hours, &rr.Entries, &rr.Relapses); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Moods(ctx context.Context, userHID, start, end string) ([]MoodsRow, error) {
	const sql = `
select mood, toInt64(count())
from reclaim.log_events
where user_hid = ? and day between ? and ?
group by mood
order by count() desc
`
	rows, err := r.ch.Query(ctx, sql, userHID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MoodsRow
	for rows.Next() {
		var rr MoodsRow
		if err := rows.Scan(&rr.Mood, &rr.Entries); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Slots(ctx context.Context, userHID, start, end string) ([]SlotsRow, error) {
	const sql = `
select watch_slot, toInt64(count()), toFloat64(sum(hours_watched))
from reclaim.log_events
where user_hid = ? and day between ? and ?
group by watch_slot
order by count() desc
`
	rows, err := r.ch.Query(ctx, sql, userHID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SlotsRow
	for rows.Next() {
		var rr SlotsRow
		if err := rows.Scan(&rr.Slot, &rr.Entries, &rr.Hours); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
