// Package daterange implements the calendar-day arithmetic behind the
// reservation flow: canonical ordering of user-picked ranges, the set of
// chargeable days in a stay, and closed-interval overlap checks.
//
// All values are day-granular: midnight UTC, no clock component. A stay is
// charged per night, so the checkout day is never charged unless the range
// collapses to a single day (a 1-day booking).
package daterange

import (
	"time"

	"rentacar/shared/failure"
)

// Range is a pair of calendar days. From/To carry no ordering guarantee until
// Normalize has been applied.
type Range struct {
	From time.Time
	To   time.Time
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// ParseDay parses a YYYY-MM-DD value, accepting a full RFC 3339 timestamp as
// a fallback since the backend serializes some dates either way.
func ParseDay(value string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("fecha inválida: " + value) //nolint:wrapcheck
	}

	return Day(parsed), nil
}

// FormatDay renders t as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format("2006-01-02")
}

// Normalize returns the range with its endpoints ordered chronologically,
// guarding against a selection dragged backwards. The second return value is
// false when either endpoint is missing.
func (r Range) Normalize() (Range, bool) {
	if r.From.IsZero() || r.To.IsZero() {
		return Range{}, false
	}

	from, to := Day(r.From), Day(r.To)
	if to.Before(from) {
		from, to = to, from
	}

	return Range{From: from, To: to}, true
}

// ChargeableDays lists every day of the stay that incurs a daily price: the
// single day itself for a same-day booking, otherwise each day from From up
// to but excluding To. This end-exclusive convention determines both the day
// count and the total shown to the user.
func (r Range) ChargeableDays() []time.Time {
	normalized, ok := r.Normalize()
	if !ok {
		return nil
	}

	if normalized.From.Equal(normalized.To) {
		return []time.Time{normalized.From}
	}

	var days []time.Time
	for cursor := normalized.From; cursor.Before(normalized.To); cursor = cursor.AddDate(0, 0, 1) {
		days = append(days, cursor)
	}

	return days
}

// Overlaps reports whether two normalized ranges share at least one day.
// Touching endpoints count: a reservation ending on day N blocks a new one
// starting on day N.
func (r Range) Overlaps(other Range) bool {
	return !(r.To.Before(other.From) || r.From.After(other.To))
}

// Contains reports whether day falls within [From, To] inclusive.
func (r Range) Contains(day time.Time) bool {
	d := Day(day)

	return !d.Before(r.From) && !d.After(r.To)
}
