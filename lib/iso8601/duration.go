// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package iso8601

import (
	"math"
	"regexp"
	"strconv"

	"github.com/bureau-foundation/chrono/lib/instant"
	"github.com/rickb777/period"
)

const (
	millisPerDay   = int64(24 * 60 * 60 * 1000)
	daysPerYear    = 365
	daysPerMonth   = 30
	millisPerYear  = daysPerYear * millisPerDay
	millisPerMonth = daysPerMonth * millisPerDay
)

var durationPattern = regexp.MustCompile(`^P(?P<years>\d*)Y(?P<months>\d*)M(?P<days>\d*)D` +
	`T(?P<hours>\d*)H(?P<minutes>\d*)M(?P<seconds>\d*)S$`)

// DurationFields is a matched duration. Every count is non-negative.
type DurationFields struct {
	Years   int64
	Months  int64
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// MatchDuration matches text against the duration form. The second
// result is false when text does not match. A match whose counts do
// not fit in milliseconds returns a *instant.ParseError.
func MatchDuration(text string) (DurationFields, bool, error) {
	match := durationPattern.FindStringSubmatch(text)
	if match == nil {
		return DurationFields{}, false, nil
	}

	var fields DurationFields
	targets := []struct {
		group string
		value *int64
	}{
		{"years", &fields.Years},
		{"months", &fields.Months},
		{"days", &fields.Days},
		{"hours", &fields.Hours},
		{"minutes", &fields.Minutes},
		{"seconds", &fields.Seconds},
	}
	for _, target := range targets {
		digits := match[durationPattern.SubexpIndex(target.group)]
		if digits == "" {
			continue
		}
		value, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return DurationFields{}, true, &instant.ParseError{
				Input:  text,
				Reason: "iso8601: duration " + target.group + " out of range",
				Err:    err,
			}
		}
		*target.value = value
	}

	if _, ok := fields.checkedMillis(); !ok {
		return DurationFields{}, true, &instant.ParseError{Input: text, Reason: "iso8601: duration out of range"}
	}
	return fields, true, nil
}

// ParseDuration is MatchDuration for callers that require a duration:
// text that does not match is a *instant.ParseError.
func ParseDuration(text string) (DurationFields, error) {
	fields, ok, err := MatchDuration(text)
	if err != nil {
		return DurationFields{}, err
	}
	if !ok {
		return DurationFields{}, &instant.ParseError{Input: text, Reason: "iso8601: not a PnYnMnDTnHnMnS duration"}
	}
	return fields, nil
}

// Millis returns the calendar-approximate length of the duration:
// years of 365 days and months of 30 days.
func (d DurationFields) Millis() int64 {
	total, _ := d.checkedMillis()
	return total
}

// AddTo returns reference shifted by Millis. The second result is
// false when the sum leaves the int64 millisecond range.
func (d DurationFields) AddTo(reference instant.Instant) (instant.Instant, bool) {
	total, ok := d.checkedMillis()
	if !ok || reference.EpochMillis() > math.MaxInt64-total {
		return instant.Instant{}, false
	}
	return reference.Plus(instant.Milliseconds, total), true
}

// IsZero reports whether every count is zero.
func (d DurationFields) IsZero() bool {
	return d == DurationFields{}
}

// String renders the canonical ISO-8601 form with zero fields
// omitted, e.g. "P1Y3M5DT6H7M30S" or "PT30S". The zero duration is
// "P0D".
func (d DurationFields) String() string {
	return period.New(int(d.Years), int(d.Months), 0, int(d.Days),
		int(d.Hours), int(d.Minutes), int(d.Seconds)).String()
}

// checkedMillis sums the fields, reporting false on int64 overflow.
func (d DurationFields) checkedMillis() (int64, bool) {
	terms := []struct{ count, unit int64 }{
		{d.Years, millisPerYear},
		{d.Months, millisPerMonth},
		{d.Days, millisPerDay},
		{d.Hours, instant.Hours.ToMillis(1)},
		{d.Minutes, instant.Minutes.ToMillis(1)},
		{d.Seconds, instant.Seconds.ToMillis(1)},
	}
	var total int64
	for _, term := range terms {
		if term.count > math.MaxInt64/term.unit {
			return 0, false
		}
		product := term.count * term.unit
		if total > math.MaxInt64-product {
			return 0, false
		}
		total += product
	}
	return total, true
}
