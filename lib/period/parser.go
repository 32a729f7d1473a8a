// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package period

import (
	"regexp"

	"github.com/bureau-foundation/chrono/lib/clock"
	"github.com/bureau-foundation/chrono/lib/instant"
	"github.com/bureau-foundation/chrono/lib/iso8601"
)

// splitPattern is the outer shape of a period string: a term starting
// with a four-digit year, optionally followed by "/" and either a
// second calendar-ish term or a duration starting with P and a digit.
var splitPattern = regexp.MustCompile(
	`^(?P<start>\d{4}-[\w\-:+.]*)(?:/(?P<end>\d{4}-[\w\-:+.]*|P\d\w*))?$`)

// Parser parses period strings. The clock anchors durations that have
// no start instant. A Parser has no mutable state and is safe for
// concurrent use.
type Parser struct {
	clock clock.Clock
}

// NewParser returns a Parser that reads the current time from c.
func NewParser(c clock.Clock) *Parser {
	return &Parser{clock: c}
}

var defaultParser = NewParser(clock.Real())

// Parse parses text with a Parser on the real clock.
func Parse(text string) (Period, error) {
	return defaultParser.Parse(text)
}

// MustParse is like Parse but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustParse(text string) Period {
	parsed, err := Parse(text)
	if err != nil {
		panic("period.MustParse(" + text + "): " + err.Error())
	}
	return parsed
}

// Parse splits text into start and end terms, resolves each, and
// classifies the result as a range (end present) or an exact instant.
func (p *Parser) Parse(text string) (Period, error) {
	match := splitPattern.FindStringSubmatch(text)
	if match == nil {
		return Period{}, &instant.ParseError{Input: text, Reason: "period: invalid period"}
	}
	startText := match[splitPattern.SubexpIndex("start")]
	endText := match[splitPattern.SubexpIndex("end")]

	start, ok, err := p.resolve(startText, nil)
	if err != nil {
		return Period{}, err
	}
	if !ok {
		return Period{}, &instant.ParseError{Input: text, Reason: "period: start is not a calendar date-time"}
	}

	if endText == "" {
		return Period{exact: &start}, nil
	}

	end, ok, err := p.resolve(endText, &start)
	if err != nil {
		return Period{}, err
	}
	if !ok {
		return Period{}, &instant.ParseError{Input: text, Reason: "period: end is neither a calendar date-time nor a duration"}
	}
	return Period{start: &start, end: &end}, nil
}

// Resolve resolves a single calendar or duration term. A duration is
// anchored to the parser clock's current time. The second result is
// false when text is empty or matches neither grammar.
func (p *Parser) Resolve(text string) (instant.Instant, bool, error) {
	return p.resolve(text, nil)
}

// ResolveFrom resolves a single term, anchoring a duration at reference.
func (p *Parser) ResolveFrom(text string, reference instant.Instant) (instant.Instant, bool, error) {
	return p.resolve(text, &reference)
}

// resolve tries the calendar grammar, then the duration grammar. A
// resolved instant outside the years 0000 through 9999 is a
// *instant.ParseError.
func (p *Parser) resolve(text string, reference *instant.Instant) (instant.Instant, bool, error) {
	if text == "" {
		return instant.Instant{}, false, nil
	}

	var resolved instant.Instant
	if fields, ok := iso8601.MatchCalendar(text); ok {
		var err error
		resolved, err = fields.Instant()
		if err != nil {
			return instant.Instant{}, true, err
		}
	} else {
		fields, ok, err := iso8601.MatchDuration(text)
		if err != nil {
			return instant.Instant{}, true, err
		}
		if !ok {
			return instant.Instant{}, false, nil
		}
		anchor := instant.Now(p.clock)
		if reference != nil {
			anchor = *reference
		}
		resolved, ok = fields.AddTo(anchor)
		if !ok {
			return instant.Instant{}, true, &instant.ParseError{Input: text, Reason: "iso8601: duration out of range"}
		}
	}

	if !resolved.InISO8601Range() {
		return instant.Instant{}, true, &instant.ParseError{Input: text, Reason: "period: instant outside years 0000-9999"}
	}
	return resolved, true, nil
}
