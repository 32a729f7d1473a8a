// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package instant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bureau-foundation/chrono/lib/clock"
	"github.com/ncruces/go-strftime"
)

const (
	// epochSecondsMaxLength is the longest decimal form (sign
	// included) that ParseEpoch treats as seconds rather than
	// milliseconds.
	epochSecondsMaxLength = 10

	// LayoutISO8601 renders whole seconds with a Z or ±HH:MM designator.
	LayoutISO8601 = "2006-01-02T15:04:05Z07:00"

	// LayoutISO8601Millis renders three fractional digits.
	LayoutISO8601Millis = "2006-01-02T15:04:05.000Z07:00"

	// LayoutSQLTimestamp has no fraction and no zone designator.
	LayoutSQLTimestamp = "2006-01-02 15:04:05"

	startOfDay = "T00:00:00"
	endOfDay   = "T23:59:59"
)

// iso8601Pattern is the full offset date-time shape accepted by
// ParseISO8601. Field ranges are checked by time.Parse afterwards.
var iso8601Pattern = regexp.MustCompile(
	`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`)

// minISO8601Millis and maxISO8601Millis bound the instants whose UTC
// rendering has a four-digit year.
var (
	minISO8601Millis = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	maxISO8601Millis = time.Date(9999, time.December, 31, 23, 59, 59, 999e6, time.UTC).UnixMilli()
)

// Instant is an immutable point in time with millisecond resolution.
// The zero value is the Unix epoch.
type Instant struct {
	millis int64
}

// Now returns the current time of c, truncated to the millisecond.
func Now(c clock.Clock) Instant {
	return FromTime(c.Now())
}

// FromTime converts t, truncated to the millisecond.
func FromTime(t time.Time) Instant {
	return Instant{millis: t.UnixMilli()}
}

// FromEpochMillis returns the Instant value milliseconds after the epoch.
func FromEpochMillis(value int64) Instant {
	return Instant{millis: value}
}

// FromEpochSeconds returns the Instant for an epoch timestamp whose
// unit is inferred from its decimal length. See ParseEpoch.
func FromEpochSeconds(value int64) Instant {
	return fromEpochDecimal(value, len(strconv.FormatInt(value, 10)))
}

// ParseEpoch parses a decimal epoch timestamp. Text of at most 10
// characters, counting a leading sign, is seconds; longer text is
// milliseconds. So "1529982199" and "1529982199000" are the same
// instant.
func ParseEpoch(text string) (Instant, error) {
	if strings.TrimSpace(text) == "" {
		return Instant{}, fmt.Errorf("instant: epoch timestamp is blank: %w", ErrInvalidArgument)
	}
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Instant{}, &ParseError{Input: text, Reason: "instant: invalid epoch timestamp", Err: err}
	}
	return fromEpochDecimal(value, len(text)), nil
}

func fromEpochDecimal(value int64, length int) Instant {
	if length <= epochSecondsMaxLength {
		return Instant{millis: value * 1000}
	}
	return Instant{millis: value}
}

// ParseISO8601 parses yyyy-MM-ddTHH:mm:ss[.fff](Z|±HH:MM). Fractions
// shorter than three digits are right-padded (".1" is 100ms); longer
// fractions are truncated to the millisecond.
func ParseISO8601(text string) (Instant, error) {
	if strings.TrimSpace(text) == "" {
		return Instant{}, fmt.Errorf("instant: ISO-8601 text is blank: %w", ErrInvalidArgument)
	}
	if !iso8601Pattern.MatchString(text) {
		return Instant{}, &ParseError{Input: text, Reason: "instant: not an ISO-8601 offset date-time"}
	}
	// RFC 3339 parsing accepts an optional fraction of any length
	// after the seconds field even though the layout has none.
	parsed, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return Instant{}, &ParseError{Input: text, Reason: "instant: field out of range", Err: err}
	}
	return FromTime(parsed), nil
}

// MustParseISO8601 is like ParseISO8601 but panics on error. Use in
// tests and static initialization where the input is known-valid.
func MustParseISO8601(text string) Instant {
	parsed, err := ParseISO8601(text)
	if err != nil {
		panic(fmt.Sprintf("instant.MustParseISO8601(%q): %v", text, err))
	}
	return parsed
}

// EpochSeconds returns whole seconds since the epoch, truncated toward
// zero.
func (i Instant) EpochSeconds() int64 { return i.millis / 1000 }

// EpochMillis returns milliseconds since the epoch.
func (i Instant) EpochMillis() int64 { return i.millis }

// EpochSecondsText returns EpochSeconds in decimal.
func (i Instant) EpochSecondsText() string { return strconv.FormatInt(i.EpochSeconds(), 10) }

// EpochMillisText returns EpochMillis in decimal.
func (i Instant) EpochMillisText() string { return strconv.FormatInt(i.millis, 10) }

// Time returns the instant as a time.Time in UTC.
func (i Instant) Time() time.Time { return time.UnixMilli(i.millis).UTC() }

// In returns the instant as a time.Time in loc (UTC when loc is nil).
func (i Instant) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(i.millis).In(loc)
}

// ISO8601 renders yyyy-MM-ddTHH:mm:ss followed by Z or ±HH:MM.
func (i Instant) ISO8601(loc *time.Location) string {
	return i.In(loc).Format(LayoutISO8601)
}

// ISO8601Millis renders yyyy-MM-ddTHH:mm:ss.SSS followed by Z or ±HH:MM.
func (i Instant) ISO8601Millis(loc *time.Location) string {
	return i.In(loc).Format(LayoutISO8601Millis)
}

// SQLTimestamp renders yyyy-MM-dd HH:mm:ss in loc's wall-clock time.
func (i Instant) SQLTimestamp(loc *time.Location) string {
	return i.In(loc).Format(LayoutSQLTimestamp)
}

// Format renders the instant with a strftime pattern such as
// "%Y-%m-%d %H:%M:%S %z".
func (i Instant) Format(pattern string, loc *time.Location) (string, error) {
	if strings.TrimSpace(pattern) == "" {
		return "", fmt.Errorf("instant: format pattern is blank: %w", ErrInvalidArgument)
	}
	return strftime.Format(pattern, i.In(loc)), nil
}

// Plus returns the instant shifted forward by an exact amount of unit.
func (i Instant) Plus(unit Unit, amount int64) Instant {
	return Instant{millis: i.millis + unit.ToMillis(amount)}
}

// Minus returns the instant shifted back by an exact amount of unit.
func (i Instant) Minus(unit Unit, amount int64) Instant {
	return Instant{millis: i.millis - unit.ToMillis(amount)}
}

// InISO8601Range reports whether i falls in the years 0000 through
// 9999 UTC. Outside that range MarshalText produces text that
// UnmarshalText rejects.
func (i Instant) InISO8601Range() bool {
	return i.millis >= minISO8601Millis && i.millis <= maxISO8601Millis
}

// Equal reports whether both instants have the same epoch millis.
func (i Instant) Equal(other Instant) bool { return i.millis == other.millis }

// Before reports whether i is strictly earlier than other.
func (i Instant) Before(other Instant) bool { return i.millis < other.millis }

// After reports whether i is strictly later than other.
func (i Instant) After(other Instant) bool { return i.millis > other.millis }

// IsAtStartOfDay reports whether the ISO8601 rendering in loc has the
// time of day 00:00:00. Milliseconds are not rendered and so are
// ignored.
func (i Instant) IsAtStartOfDay(loc *time.Location) bool {
	return strings.Contains(i.ISO8601(loc), startOfDay)
}

// IsAtEndOfDay reports whether the ISO8601 rendering in loc has the
// time of day 23:59:59.
func (i Instant) IsAtEndOfDay(loc *time.Location) bool {
	return strings.Contains(i.ISO8601(loc), endOfDay)
}

// String returns ISO8601Millis in UTC.
func (i Instant) String() string { return i.ISO8601Millis(nil) }

// MarshalText implements encoding.TextMarshaler. The text form is
// ISO8601Millis in UTC, so JSON and CBOR both carry a string.
func (i Instant) MarshalText() ([]byte, error) {
	return []byte(i.ISO8601Millis(nil)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Instant) UnmarshalText(data []byte) error {
	parsed, err := ParseISO8601(string(data))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
