// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package period

import (
	"math"
	"strings"
	"time"

	"github.com/bureau-foundation/chrono/lib/instant"
	"github.com/rickb777/date/v2"
	"github.com/rickb777/date/v2/timespan"
)

// maxDurationMillis is the longest span, in milliseconds, that a
// time.Duration holds.
const maxDurationMillis = int64(math.MaxInt64 / time.Millisecond)

// Period is the result of parsing a period string: either an exact
// instant, or a range with both a start and an end. Never both, and
// never neither, for a Period returned by Parse. The zero value is the
// empty Period and is only produced by failed parses.
//
// Period is an immutable value type.
type Period struct {
	start *instant.Instant
	end   *instant.Instant
	exact *instant.Instant
}

// Start returns the start of a range. False for an exact period.
func (p Period) Start() (instant.Instant, bool) { return deref(p.start) }

// End returns the end of a range. False for an exact period.
func (p Period) End() (instant.Instant, bool) { return deref(p.end) }

// Exact returns the instant of an exact period. False for a range.
func (p Period) Exact() (instant.Instant, bool) { return deref(p.exact) }

func deref(value *instant.Instant) (instant.Instant, bool) {
	if value == nil {
		return instant.Instant{}, false
	}
	return *value, true
}

// IsRange reports whether the period has both a start and an end.
func (p Period) IsRange() bool { return p.start != nil && p.end != nil }

// IsExact reports whether the period is a single instant.
func (p Period) IsExact() bool { return p.exact != nil }

// IsZero reports whether the period is empty.
func (p Period) IsZero() bool { return p.start == nil && p.end == nil && p.exact == nil }

// IsWholeMonth reports whether a range starts on the first calendar
// day of a month and ends on the last calendar day of that same
// month, with both dates read in loc (UTC when nil). Times of day are
// not checked. Exact periods are never whole months.
func (p Period) IsWholeMonth(loc *time.Location) bool {
	if !p.IsRange() {
		return false
	}
	startText := p.start.ISO8601(loc)
	endText := p.end.ISO8601(loc)

	local := p.start.In(loc)
	firstDay := date.New(local.Year(), local.Month(), 1)
	lastDay := firstDay.AddDate(0, 1, -1)

	return strings.HasPrefix(startText, firstDay.String()) &&
		strings.HasPrefix(endText, lastDay.String())
}

// IsTalliedWithDuration reports whether a range is exactly amount of
// unit long, to the millisecond. Exact periods and invalid units never
// tally.
func (p Period) IsTalliedWithDuration(unit instant.Unit, amount int64) bool {
	if !p.IsRange() || !unit.IsValid() {
		return false
	}
	span := p.DurationMillis()
	size := unit.ToMillis(1)
	return span%size == 0 && span/size == amount
}

// DurationMillis returns end minus start in milliseconds for a range,
// zero otherwise. A range whose end precedes its start is negative.
func (p Period) DurationMillis() int64 {
	if !p.IsRange() {
		return 0
	}
	return p.end.EpochMillis() - p.start.EpochMillis()
}

// Duration is DurationMillis as a time.Duration. Ranges longer than
// about 292 years saturate at the largest time.Duration of the same
// sign.
func (p Period) Duration() time.Duration {
	millis := p.DurationMillis()
	switch {
	case millis > maxDurationMillis:
		return time.Duration(math.MaxInt64)
	case millis < -maxDurationMillis:
		return time.Duration(math.MinInt64)
	default:
		return time.Duration(millis) * time.Millisecond
	}
}

// Span returns the range as a timespan.TimeSpan. False for an exact
// period.
func (p Period) Span() (timespan.TimeSpan, bool) {
	if !p.IsRange() {
		return timespan.TimeSpan{}, false
	}
	return timespan.BetweenTimes(p.start.Time(), p.end.Time()), true
}

// Contains reports whether moment lies in the half-open range
// [start, end), or equals the instant of an exact period.
func (p Period) Contains(moment instant.Instant) bool {
	switch {
	case p.IsExact():
		return p.exact.Equal(moment)
	case p.IsRange():
		return !moment.Before(*p.start) && moment.Before(*p.end)
	default:
		return false
	}
}

// String returns "<start>/<end>" or "<exact>", each as ISO-8601 with
// milliseconds in UTC. Durations are always resolved, so the text
// re-parses to an equal Period without reading a clock.
func (p Period) String() string {
	switch {
	case p.IsExact():
		return p.exact.ISO8601Millis(nil)
	case p.IsRange():
		return p.start.ISO8601Millis(nil) + "/" + p.end.ISO8601Millis(nil)
	default:
		return ""
	}
}

// Equal reports whether both periods have the same shape and instants.
func (p Period) Equal(other Period) bool {
	return sameInstant(p.start, other.start) &&
		sameInstant(p.end, other.end) &&
		sameInstant(p.exact, other.exact)
}

func sameInstant(a, b *instant.Instant) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// MarshalText implements encoding.TextMarshaler using String.
func (p Period) MarshalText() ([]byte, error) {
	if p.IsZero() {
		return nil, nil
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input
// produces the zero Period.
func (p *Period) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*p = Period{}
		return nil
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
