// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package instant provides Instant, an immutable point in time with
// millisecond resolution, and its renderings.
//
// An Instant stores only epoch milliseconds. Zone information in the
// text it was parsed from fixes the absolute time at construction and
// is then discarded; every rendering takes the zone to render in as an
// explicit *time.Location argument, where nil means UTC. There is no
// process-wide default zone.
//
// Construction:
//
//   - [Now] reads a [clock.Clock].
//   - [FromEpochSeconds] and [ParseEpoch] apply the 10-character rule:
//     a decimal form of at most 10 characters (sign included) is
//     seconds, anything longer is already milliseconds. Ten digits of
//     seconds last until the year 2286.
//   - [FromEpochMillis] and [FromTime] are direct.
//   - [ParseISO8601] accepts yyyy-MM-ddTHH:mm:ss with an optional
//     fraction and a mandatory Z or ±HH:MM designator.
//
// Renderings:
//
//	ISO8601        2018-06-26T03:03:19Z
//	ISO8601Millis  2018-06-26T03:03:19.000Z
//	SQLTimestamp   2018-06-26 03:03:19
//	Format         any strftime pattern, e.g. "%d/%m/%Y"
//
// Parse failures are reported as *[ParseError]; blank input where a
// value is required wraps [ErrInvalidArgument].
package instant
