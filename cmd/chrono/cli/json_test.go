// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestEmitJSON_Disabled(t *testing.T) {
	var output JSONOutput
	var buffer bytes.Buffer

	done, err := output.EmitJSON(&buffer, map[string]string{"a": "b"})
	if done || err != nil {
		t.Errorf("EmitJSON = (%v, %v), want (false, nil)", done, err)
	}
	if buffer.Len() != 0 {
		t.Errorf("wrote %q with --json unset", buffer.String())
	}
}

func TestEmitJSON_Enabled(t *testing.T) {
	output := JSONOutput{OutputJSON: true}
	var buffer bytes.Buffer

	done, err := output.EmitJSON(&buffer, map[string]string{"exact": "2017-01-01T08:00:00.000Z"})
	if !done || err != nil {
		t.Fatalf("EmitJSON = (%v, %v), want (true, nil)", done, err)
	}
	want := "{\n  \"exact\": \"2017-01-01T08:00:00.000Z\"\n}\n"
	if buffer.String() != want {
		t.Errorf("output = %q, want %q", buffer.String(), want)
	}
}

func TestEmitJSON_NilSliceIsEmptyArray(t *testing.T) {
	output := JSONOutput{OutputJSON: true}
	var buffer bytes.Buffer

	var reports []string
	if _, err := output.EmitJSON(&buffer, reports); err != nil {
		t.Fatalf("EmitJSON: %v", err)
	}
	if strings.TrimSpace(buffer.String()) != "[]" {
		t.Errorf("output = %q, want []", buffer.String())
	}
}

func TestNewLogger_HandlerSelection(t *testing.T) {
	var text, structured bytes.Buffer

	newLogger(&text, true, slog.LevelInfo).Info("parsed", "input", "2017-01-01")
	newLogger(&structured, false, slog.LevelInfo).Info("parsed", "input", "2017-01-01")

	if !strings.Contains(text.String(), "msg=parsed") {
		t.Errorf("terminal output = %q, want text handler format", text.String())
	}
	if !strings.Contains(structured.String(), `"msg":"parsed"`) {
		t.Errorf("piped output = %q, want JSON handler format", structured.String())
	}
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buffer bytes.Buffer
	logger := newLogger(&buffer, false, slog.LevelInfo)

	logger.Debug("hidden")
	if buffer.Len() != 0 {
		t.Errorf("debug record written at info level: %q", buffer.String())
	}
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"chatty", slog.LevelInfo},
	}
	for _, test := range tests {
		if got := levelFromEnv(test.value); got != test.want {
			t.Errorf("levelFromEnv(%q) = %v, want %v", test.value, got, test.want)
		}
	}
}

func TestStyles_Plain(t *testing.T) {
	styles := NewStyles(&bytes.Buffer{})

	if got := styles.Label("start"); got != "start           " {
		t.Errorf("Label = %q, want padded plain text", got)
	}
	if styles.Verdict(true) != "yes" || styles.Verdict(false) != "no" {
		t.Errorf("Verdict = %q/%q, want yes/no", styles.Verdict(true), styles.Verdict(false))
	}
	if styles.Muted("(none)") != "(none)" {
		t.Errorf("Muted = %q, want (none)", styles.Muted("(none)"))
	}
}

func TestStyles_EnabledKeepsText(t *testing.T) {
	styles := newStyles(true)

	if !strings.Contains(styles.Label("start"), "start") {
		t.Errorf("Label = %q, want it to contain the label", styles.Label("start"))
	}
	if !strings.Contains(styles.Verdict(false), "no") {
		t.Errorf("Verdict(false) = %q, want it to contain no", styles.Verdict(false))
	}
}
