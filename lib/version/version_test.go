// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	t.Cleanup(func() {
		GitCommit, GitDirty, BuildTime = "unknown", "false", "unknown"
	})

	GitCommit, GitDirty, BuildTime = "abc1234", "false", "2026-03-01T00:00:00Z"
	if got, want := Info(), "chrono 0.1.0-dev (abc1234, 2026-03-01T00:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}

	GitDirty = "true"
	if got := Info(); !strings.Contains(got, "abc1234-dirty") {
		t.Errorf("Info() = %q, want dirty marker", got)
	}
}

func TestFull(t *testing.T) {
	full := Full()
	if !strings.HasPrefix(full, Info()) {
		t.Errorf("Full() = %q, want it to start with Info()", full)
	}
	if !strings.Contains(full, runtime.Version()) {
		t.Errorf("Full() = %q, want Go version %s", full, runtime.Version())
	}
}

func TestCurrent(t *testing.T) {
	report := Current()
	if report.Version != Version {
		t.Errorf("Version = %q, want %q", report.Version, Version)
	}
	if report.Dirty {
		t.Error("Dirty = true for a development build")
	}
	if report.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", report.Platform)
	}
}
