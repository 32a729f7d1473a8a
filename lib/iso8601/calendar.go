// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package iso8601

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/bureau-foundation/chrono/lib/instant"
)

var calendarPattern = regexp.MustCompile(`^(?P<year>\d{4})` +
	`(?:-(?P<month>0[1-9]|1[0-2])` +
	`(?:-(?P<day>0[1-9]|[12]\d|3[01])` +
	`(?:T(?P<hour>[01]\d|2[0-3]):(?P<minute>[0-5]\d):(?P<second>[0-5]\d)` +
	`(?:\.(?P<fraction>\d{1,3}))?` +
	`(?P<zone>Z|[+-](?:[01]\d|2[0-3]):[0-5]\d)?` +
	`)?)?)?$`)

// CalendarFields is a matched calendar date-time with defaults applied.
type CalendarFields struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int

	// Fraction holds the 0-3 fractional-second digits exactly as
	// written ("1" is a tenth of a second).
	Fraction string

	// Zone is "Z" or a ±HH:MM offset.
	Zone string
}

// MatchCalendar matches text against the calendar form. The second
// result is false when text does not match.
func MatchCalendar(text string) (CalendarFields, bool) {
	match := calendarPattern.FindStringSubmatch(text)
	if match == nil {
		return CalendarFields{}, false
	}
	group := func(name string) string {
		return match[calendarPattern.SubexpIndex(name)]
	}
	return CalendarFields{
		Year:     atoiDefault(group("year"), 0),
		Month:    atoiDefault(group("month"), 1),
		Day:      atoiDefault(group("day"), 1),
		Hour:     atoiDefault(group("hour"), 0),
		Minute:   atoiDefault(group("minute"), 0),
		Second:   atoiDefault(group("second"), 0),
		Fraction: group("fraction"),
		Zone:     stringDefault(group("zone"), "Z"),
	}, true
}

// Text returns the full offset date-time, e.g. "2017-01-01T00:00:00Z".
func (f CalendarFields) Text() string {
	fraction := ""
	if f.Fraction != "" {
		fraction = "." + f.Fraction
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d%s%s",
		f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, fraction, f.Zone)
}

// Instant parses Text. Fails with a *instant.ParseError for a day
// that does not exist in its month.
func (f CalendarFields) Instant() (instant.Instant, error) {
	return instant.ParseISO8601(f.Text())
}

// atoiDefault converts a regex group that matched only digits. An
// empty group yields fallback.
func atoiDefault(digits string, fallback int) int {
	if digits == "" {
		return fallback
	}
	value, err := strconv.Atoi(digits)
	if err != nil {
		return fallback
	}
	return value
}

func stringDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
