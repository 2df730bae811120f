package streak

import (
	"time"

	perr "reclaim/internal/platform/errors"
)

// dateLayout is the wire format for civil days everywhere in the app
const dateLayout = "2006-01-02"

// Date is a civil calendar day with no time-of-day and no zone.
// It is stored as a day ordinal so values are comparable, cheap map keys,
// and day stepping is plain integer arithmetic (no DST drift).
type Date struct {
	ord int
}

// ParseDate parses a YYYY-MM-DD string into a Date
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "invalid date %q", s)
	}
	return dateFromTime(t), nil
}

// MustDate parses s or panics; intended for seeds and tests
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf truncates t to the civil day it falls on in loc.
// The host resolves the zone once per invocation and passes dates down;
// nothing below this call ever reads a clock or a zone again.
func DateOf(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return dateFromTime(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func dateFromTime(t time.Time) Date {
	return Date{ord: int(t.Unix() / 86400)}
}

// IsZero reports whether d is the zero value, meaning "no date".
// The zero ordinal aliases 1970-01-01, which cannot occur as a real
// program or log date in this app.
func (d Date) IsZero() bool { return d.ord == 0 }

// String renders the YYYY-MM-DD form
func (d Date) String() string {
	return time.Unix(int64(d.ord)*86400, 0).UTC().Format(dateLayout)
}

// Before reports whether d falls before o
func (d Date) Before(o Date) bool { return d.ord < o.ord }

// After reports whether d falls after o
func (d Date) After(o Date) bool { return d.ord > o.ord }

// Equal reports whether d and o are the same day
func (d Date) Equal(o Date) bool { return d.ord == o.ord }

// AddDays returns d shifted by n whole days
func (d Date) AddDays(n int) Date { return Date{ord: d.ord + n} }

// Next returns the following day
func (d Date) Next() Date { return d.AddDays(1) }

// DaysUntil returns the signed day count from d to o
func (d Date) DaysUntil(o Date) int { return o.ord - d.ord }

// MinDate returns the earlier of a and b
func MinDate(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}
