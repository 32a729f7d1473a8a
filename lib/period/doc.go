// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package period parses extended ISO-8601 interval strings into a
// Period: either a single exact instant or a start/end range.
//
// Accepted shapes:
//
//	<calendar>                 2017-01-01T00:00:00-08:00      (exact)
//	<calendar>/<calendar>      2017-01-01/2017-01-31T23:59:59Z (range)
//	<calendar>/<duration>      2017-01-01/P1Y3M5DT6H7M30S     (range)
//
// Only calendar dates, durations and intervals are supported. Years
// alone carry no zone, and week dates, ordinal dates and recurring
// intervals (R/...) are out of scope.
//
// Parsing is atomic: a string either yields a complete Period or a
// *instant.ParseError. The grammar of each term lives in lib/iso8601;
// this package splits the string, resolves each term, and classifies
// the result.
//
// The end term of a range may be a duration, which is added to the
// start with 365-day years and 30-day months (see lib/iso8601). A
// duration resolved with no start at all, through [Parser.Resolve], is
// anchored to the parser's clock.
package period
