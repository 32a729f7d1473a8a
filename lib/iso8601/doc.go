// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package iso8601 recognizes the two sub-grammars that appear inside a
// period string and decomposes them into structured fields.
//
// Calendar form (reduced precision allowed, zone only after a time):
//
//	YYYY[-MM[-DD[THH:MM:SS[.f{1,3}][Z|±HH:MM]]]]
//
// Missing month and day default to 01, missing time fields to 00, and
// a missing zone to Z. Out-of-range fields (month 13, day 00, hour 24,
// minute 60, ...) do not match at all; they never produce an error
// mid-match. A day that does not exist in its month (02-30) matches
// here and fails later in [CalendarFields.Instant].
//
// Duration form:
//
//	P<n>Y<n>M<n>DT<n>H<n>M<n>S
//
// Every number is optional and defaults to 0, but all seven markers,
// including the T separator, are mandatory: "P1Y2M3DT4H5M6S" and
// "PYMDTHMS" match, "P1Y" and "PT5M" do not.
//
// Duration arithmetic is calendar-approximate: a year is 365 days and
// a month is 30 days, independent of the anchor date. Existing
// expected outputs depend on this approximation, so it must not be
// replaced with calendar-aware addition.
package iso8601
