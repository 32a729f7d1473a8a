// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides the injectable time source used by the
// instant and period packages.
//
// Nothing in chrono calls time.Now directly. Code that needs the
// current moment (instant.Now, and the period parser when a bare
// duration has no start to anchor to) accepts a Clock. In production,
// Real() reads the system clock. In tests, Fake() returns a clock that
// stands still until Set or Advance is called, so expected values can
// be written down exactly:
//
//	c := clock.Fake(time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC))
//	parser := period.NewParser(c)
//	end, _, _ := parser.Resolve("P0Y0M1DT0H0M0S")
//	// end is 2017-01-02T00:00:00Z regardless of wall-clock time.
package clock
