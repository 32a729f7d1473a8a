// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package instant

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bureau-foundation/chrono/lib/clock"
	"github.com/bureau-foundation/chrono/lib/testutil"
)

func TestParseISO8601(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantSeconds int64
		wantMillis  int64
	}{
		{"utc", "2018-06-26T03:03:19Z", 1529982199, 1529982199000},
		{"utc_millis", "2018-06-26T03:03:19.123Z", 1529982199, 1529982199123},
		{"plus_eight", "2018-06-26T11:03:19+08:00", 1529982199, 1529982199000},
		{"plus_eight_millis", "2018-06-26T11:03:19.123+08:00", 1529982199, 1529982199123},
		{"minus_eight", "2018-06-26T11:03:19-08:00", 1530039799, 1530039799000},
		{"minus_eight_millis", "2018-06-26T11:03:19.123-08:00", 1530039799, 1530039799123},
		{"one_digit_fraction", "2018-06-26T11:03:19.1Z", 1530010999, 1530010999100},
		{"two_digit_fraction", "2018-06-26T11:03:19.12Z", 1530010999, 1530010999120},
		{"long_fraction_truncated", "2018-06-26T11:03:19.123987Z", 1530010999, 1530010999123},
		{"zero_offset", "2018-06-26T03:03:19+00:00", 1529982199, 1529982199000},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			parsed, err := ParseISO8601(test.input)
			if err != nil {
				t.Fatalf("ParseISO8601(%q): %v", test.input, err)
			}
			if got := parsed.EpochSeconds(); got != test.wantSeconds {
				t.Errorf("EpochSeconds() = %d, want %d", got, test.wantSeconds)
			}
			if got := parsed.EpochMillis(); got != test.wantMillis {
				t.Errorf("EpochMillis() = %d, want %d", got, test.wantMillis)
			}
		})
	}
}

func TestParseISO8601Invalid(t *testing.T) {
	inputs := []string{
		"2018-06-26",
		"2018-06-26T03:03:19",
		"2018-06-26T03:03Z",
		"2018-06-26 03:03:19Z",
		"2018-6-26T03:03:19Z",
		"2018-13-26T03:03:19Z",
		"2018-02-30T03:03:19Z",
		"2018-06-26T24:03:19Z",
		"2018-06-26T03:60:19Z",
		"2018-06-26T03:03:19+0800",
		"2018-06-26T03:03:19.Z",
		"not-a-time",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseISO8601(input)
			if err == nil {
				t.Fatalf("ParseISO8601(%q) = nil error, want ParseError", input)
			}
			if !IsParseError(err) {
				t.Errorf("ParseISO8601(%q) error = %T (%v), want *ParseError", input, err, err)
			}
		})
	}
}

func TestParseISO8601Blank(t *testing.T) {
	for _, input := range []string{"", "   "} {
		_, err := ParseISO8601(input)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseISO8601(%q) = %v, want ErrInvalidArgument", input, err)
		}
	}
}

func TestISO8601MillisRoundTrip(t *testing.T) {
	inputs := []string{
		"2018-06-26T03:03:19Z",
		"2018-06-26T03:03:19.1Z",
		"2018-06-26T03:03:19.12+08:00",
		"2018-06-26T03:03:19.123-05:30",
		"1999-12-31T23:59:59.999Z",
	}
	for _, input := range inputs {
		original := MustParseISO8601(input)
		reparsed, err := ParseISO8601(original.ISO8601Millis(nil))
		if err != nil {
			t.Fatalf("reparse %q: %v", original.ISO8601Millis(nil), err)
		}
		if !reparsed.Equal(original) {
			t.Errorf("round trip of %q: got %d, want %d", input, reparsed.EpochMillis(), original.EpochMillis())
		}
	}
}

func TestFromEpochSeconds(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		want  string
	}{
		{"seconds", 1529982199, "2018-06-26T03:03:19.000Z"},
		{"millis", 1529982199123, "2018-06-26T03:03:19.123Z"},
		{"zero", 0, "1970-01-01T00:00:00.000Z"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := FromEpochSeconds(test.value).ISO8601Millis(nil); got != test.want {
				t.Errorf("FromEpochSeconds(%d).ISO8601Millis() = %q, want %q", test.value, got, test.want)
			}
		})
	}
}

func TestFromEpochSecondsRoundTrip(t *testing.T) {
	for _, seconds := range []int64{0, 1, 59, 1529982199, 9999999999} {
		if got := FromEpochSeconds(seconds).EpochSeconds(); got != seconds {
			t.Errorf("FromEpochSeconds(%d).EpochSeconds() = %d", seconds, got)
		}
	}
	for _, millis := range []int64{0, 1, 999, 1529982199123} {
		if got := FromEpochMillis(millis).EpochMillis(); got != millis {
			t.Errorf("FromEpochMillis(%d).EpochMillis() = %d", millis, got)
		}
	}
}

func TestParseEpoch(t *testing.T) {
	tests := []struct {
		input      string
		wantMillis int64
	}{
		{"1529982199", 1529982199000},
		{"1529982199123", 1529982199123},
		{"0", 0},
		// The sign counts toward the 10-character limit.
		{"-152998219", -152998219000},
		{"-1529982199", -1529982199},
	}
	for _, test := range tests {
		parsed, err := ParseEpoch(test.input)
		if err != nil {
			t.Fatalf("ParseEpoch(%q): %v", test.input, err)
		}
		if got := parsed.EpochMillis(); got != test.wantMillis {
			t.Errorf("ParseEpoch(%q).EpochMillis() = %d, want %d", test.input, got, test.wantMillis)
		}
	}
}

func TestParseEpochErrors(t *testing.T) {
	if _, err := ParseEpoch(""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseEpoch(\"\") = %v, want ErrInvalidArgument", err)
	}
	_, err := ParseEpoch("15299x2199")
	var parseError *ParseError
	if !errors.As(err, &parseError) {
		t.Fatalf("ParseEpoch(\"15299x2199\") = %v, want *ParseError", err)
	}
	if parseError.Input != "15299x2199" {
		t.Errorf("ParseError.Input = %q, want %q", parseError.Input, "15299x2199")
	}
}

func TestNegativeEpochTruncatesTowardZero(t *testing.T) {
	if got := FromEpochMillis(-1500).EpochSeconds(); got != -1 {
		t.Errorf("FromEpochMillis(-1500).EpochSeconds() = %d, want -1", got)
	}
}

func TestRenderings(t *testing.T) {
	location := testutil.Location(t, "Asia/Taipei")
	moment := FromEpochSeconds(1529982199)

	if got, want := moment.ISO8601(nil), "2018-06-26T03:03:19Z"; got != want {
		t.Errorf("ISO8601(nil) = %q, want %q", got, want)
	}
	if got, want := moment.ISO8601(location), "2018-06-26T11:03:19+08:00"; got != want {
		t.Errorf("ISO8601(Taipei) = %q, want %q", got, want)
	}
	if got, want := moment.ISO8601Millis(location), "2018-06-26T11:03:19.000+08:00"; got != want {
		t.Errorf("ISO8601Millis(Taipei) = %q, want %q", got, want)
	}
	if got, want := moment.SQLTimestamp(nil), "2018-06-26 03:03:19"; got != want {
		t.Errorf("SQLTimestamp(nil) = %q, want %q", got, want)
	}
	if got, want := moment.SQLTimestamp(location), "2018-06-26 11:03:19"; got != want {
		t.Errorf("SQLTimestamp(Taipei) = %q, want %q", got, want)
	}
	if got, want := moment.EpochSecondsText(), "1529982199"; got != want {
		t.Errorf("EpochSecondsText() = %q, want %q", got, want)
	}
	if got, want := moment.EpochMillisText(), "1529982199000"; got != want {
		t.Errorf("EpochMillisText() = %q, want %q", got, want)
	}
}

func TestFormat(t *testing.T) {
	moment := FromEpochSeconds(1529982199)

	got, err := moment.Format("%Y/%m/%d %H:%M:%S", testutil.Location(t, "Asia/Taipei"))
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if want := "2018/06/26 11:03:19"; got != want {
		t.Errorf("Format(Taipei) = %q, want %q", got, want)
	}

	got, err = moment.Format("%Y-%m-%d", nil)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if want := "2018-06-26"; got != want {
		t.Errorf("Format(nil) = %q, want %q", got, want)
	}

	if _, err := moment.Format(" ", nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Format(blank) = %v, want ErrInvalidArgument", err)
	}
}

func TestNowFromClock(t *testing.T) {
	fake := clock.Fake(time.Date(2018, 6, 26, 3, 3, 19, 123456789, time.UTC))
	now := Now(fake)
	if got, want := now.EpochMillis(), int64(1529982199123); got != want {
		t.Errorf("Now().EpochMillis() = %d, want %d", got, want)
	}
}

func TestNowRenderingShapes(t *testing.T) {
	now := Now(clock.Real())
	checks := []struct {
		name    string
		pattern string
		value   string
	}{
		{"epoch_seconds", `^\d{10}$`, now.EpochSecondsText()},
		{"epoch_millis", `^\d{13}$`, now.EpochMillisText()},
		{"iso8601", `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`, now.ISO8601(nil)},
		{"iso8601_millis", `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`, now.ISO8601Millis(nil)},
		{"iso8601_millis_taipei", `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}\+08:00$`, now.ISO8601Millis(testutil.Location(t, "Asia/Taipei"))},
	}
	for _, check := range checks {
		if !regexp.MustCompile(check.pattern).MatchString(check.value) {
			t.Errorf("%s = %q, want match for %s", check.name, check.value, check.pattern)
		}
	}
}

func TestPlusMinus(t *testing.T) {
	base := MustParseISO8601("2018-06-26T03:03:19Z")
	tests := []struct {
		unit   Unit
		amount int64
		want   string
	}{
		{Milliseconds, 250, "2018-06-26T03:03:19.250Z"},
		{Seconds, 41, "2018-06-26T03:04:00.000Z"},
		{Minutes, 57, "2018-06-26T04:00:19.000Z"},
		{Hours, 21, "2018-06-27T00:03:19.000Z"},
		{Days, 5, "2018-07-01T03:03:19.000Z"},
	}
	for _, test := range tests {
		shifted := base.Plus(test.unit, test.amount)
		if got := shifted.ISO8601Millis(nil); got != test.want {
			t.Errorf("Plus(%s, %d) = %q, want %q", test.unit, test.amount, got, test.want)
		}
		if back := shifted.Minus(test.unit, test.amount); !back.Equal(base) {
			t.Errorf("Minus(%s, %d) = %s, want %s", test.unit, test.amount, back, base)
		}
	}
}

func TestEqualBeforeAfter(t *testing.T) {
	a := FromEpochSeconds(1529982199)
	b := FromEpochSeconds(1529982199)
	c := FromEpochSeconds(1529982200)

	if !a.Equal(b) {
		t.Error("Equal() = false for identical epoch seconds")
	}
	if a.Equal(c) {
		t.Error("Equal() = true for different epoch seconds")
	}
	if !a.Before(c) || a.After(c) {
		t.Error("ordering of a and c is wrong")
	}
	if !MustParseISO8601("2018-06-26T11:03:19+08:00").Equal(a) {
		t.Error("offset rendering of the same instant should be Equal")
	}
}

func TestIsAtStartOfDay(t *testing.T) {
	location := testutil.Location(t, "Asia/Taipei")
	tests := []struct {
		input    string
		location *time.Location
		want     bool
	}{
		{"2018-06-26T00:00:00Z", nil, true},
		{"2018-06-26T00:00:01Z", nil, false},
		{"2018-06-26T00:00:00+08:00", nil, false},
		{"2018-06-26T00:00:00+08:00", location, true},
		{"2018-06-26T00:00:00.500Z", nil, true},
	}
	for _, test := range tests {
		if got := MustParseISO8601(test.input).IsAtStartOfDay(test.location); got != test.want {
			t.Errorf("IsAtStartOfDay(%q, %v) = %v, want %v", test.input, test.location, got, test.want)
		}
	}
}

func TestIsAtEndOfDay(t *testing.T) {
	location := testutil.Location(t, "Asia/Taipei")
	tests := []struct {
		input    string
		location *time.Location
		want     bool
	}{
		{"2018-06-26T23:59:59Z", nil, true},
		{"2018-06-26T00:00:01Z", nil, false},
		{"2018-06-26T23:59:59+08:00", nil, false},
		{"2018-06-26T23:59:59+08:00", location, true},
	}
	for _, test := range tests {
		if got := MustParseISO8601(test.input).IsAtEndOfDay(test.location); got != test.want {
			t.Errorf("IsAtEndOfDay(%q, %v) = %v, want %v", test.input, test.location, got, test.want)
		}
	}
}

func TestTextMarshaling(t *testing.T) {
	type wrapper struct {
		At Instant `json:"at"`
	}
	original := wrapper{At: MustParseISO8601("2018-06-26T11:03:19.123+08:00")}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := `{"at":"2018-06-26T03:03:19.123Z"}`; string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded wrapper
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !decoded.At.Equal(original.At) {
		t.Errorf("decoded %s, want %s", decoded.At, original.At)
	}

	if err := json.Unmarshal([]byte(`{"at":"yesterday"}`), &decoded); err == nil {
		t.Error("Unmarshal of invalid instant succeeded")
	}
}

func TestInISO8601Range(t *testing.T) {
	first := MustParseISO8601("0000-01-01T00:00:00Z")
	last := MustParseISO8601("9999-12-31T23:59:59.999Z")

	tests := []struct {
		name string
		at   Instant
		want bool
	}{
		{"epoch", FromEpochMillis(0), true},
		{"first", first, true},
		{"last", last, true},
		{"before first", first.Minus(Milliseconds, 1), false},
		{"after last", last.Plus(Milliseconds, 1), false},
	}
	for _, test := range tests {
		if got := test.at.InISO8601Range(); got != test.want {
			t.Errorf("%s: InISO8601Range() = %v, want %v", test.name, got, test.want)
		}
	}

	for _, bound := range []Instant{first, last} {
		text, err := bound.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", bound.EpochMillis(), err)
		}
		var decoded Instant
		if err := decoded.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if !decoded.Equal(bound) {
			t.Errorf("round trip of %s = %s", text, decoded)
		}
	}
}
