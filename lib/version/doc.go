// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version holds the build information printed by
// "chrono version".
//
// Four variables are injected at build time via -ldflags -X:
//
//	go build -ldflags "-X github.com/bureau-foundation/chrono/lib/version.GitCommit=$(git rev-parse --short HEAD)" ./cmd/chrono
//
// They default to "unknown" and "0.1.0-dev" in development builds and
// test runs.
package version
