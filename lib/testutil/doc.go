// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for chrono packages.
//
// [Location] loads an IANA zone from the embedded tzdata, so tests
// that render in Asia/Taipei pass on hosts without a zoneinfo
// database. [WriteFile] writes a fixture into the test's temporary
// directory. [RequireClosed] bounds a wait on a completion channel so
// a deadlock fails the test instead of hanging it.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no chrono-internal dependencies.
package testutil
