// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package instant

import (
	"errors"
	"testing"
)

func TestUnitToMillis(t *testing.T) {
	tests := []struct {
		unit   Unit
		amount int64
		want   int64
	}{
		{Milliseconds, 7, 7},
		{Seconds, 2, 2000},
		{Minutes, 3, 180000},
		{Hours, 1, 3600000},
		{Days, 1, 86400000},
		{Days, -2, -172800000},
		{Unit(0), 5, 0},
	}
	for _, test := range tests {
		if got := test.unit.ToMillis(test.amount); got != test.want {
			t.Errorf("%s.ToMillis(%d) = %d, want %d", test.unit, test.amount, got, test.want)
		}
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input string
		want  Unit
	}{
		{"days", Days},
		{"DAYS", Days},
		{"day", Days},
		{"Hour", Hours},
		{"minutes", Minutes},
		{"second", Seconds},
		{"ms", Milliseconds},
		{"milliseconds", Milliseconds},
	}
	for _, test := range tests {
		got, err := ParseUnit(test.input)
		if err != nil {
			t.Fatalf("ParseUnit(%q): %v", test.input, err)
		}
		if got != test.want {
			t.Errorf("ParseUnit(%q) = %s, want %s", test.input, got, test.want)
		}
	}

	if _, err := ParseUnit("fortnights"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseUnit(fortnights) = %v, want ErrInvalidArgument", err)
	}
}

func TestUnitString(t *testing.T) {
	if got := Days.String(); got != "days" {
		t.Errorf("Days.String() = %q, want %q", got, "days")
	}
	if got := Unit(42).String(); got != "Unit(42)" {
		t.Errorf("Unit(42).String() = %q", got)
	}
	if Unit(42).IsValid() || !Seconds.IsValid() {
		t.Error("IsValid() disagrees with the defined units")
	}
}
