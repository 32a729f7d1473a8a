// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1}, // substitution
		{"abc", "ab", 1},  // deletion
		{"ab", "abc", 1},  // insertion
		{"abc", "bac", 2}, // transposition (counted as 2 edits)
		{"kitten", "sitting", 3},
		{"parse", "prase", 2},
		{"instant", "instnt", 1},
		{"duration", "duartion", 2},
		{"zöne", "zone", 1}, // one rune, two bytes
	}

	for _, test := range tests {
		t.Run(test.a+"->"+test.b, func(t *testing.T) {
			got := levenshtein(test.a, test.b)
			if got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestLevenshtein_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"abc", "abd"},
		{"zone", "zon"},
		{"pattern", "patern"},
	}

	for _, pair := range pairs {
		forward := levenshtein(pair[0], pair[1])
		reverse := levenshtein(pair[1], pair[0])
		if forward != reverse {
			t.Errorf("levenshtein(%q, %q) = %d, but reverse = %d",
				pair[0], pair[1], forward, reverse)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "parse"},
		{Name: "instant"},
		{Name: "now"},
		{Name: "duration"},
		{Name: "spool"},
		{Name: "version"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"prase", "parse"},       // transposition
		{"instnt", "instant"},    // missing letter
		{"nowww", "now"},         // extra letters
		{"vrsion", "version"},    // missing letter
		{"duraton", "duration"},  // missing letter
		{"spoll", "spool"},       // substitution
		{"zzzzzzzzz", ""},        // nothing close
		{"instantly", "instant"}, // suffix
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := suggestCommand(test.input, commands)
			if got != test.want {
				t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestSuggestFlag(t *testing.T) {
	makeFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flagSet.String("zone", "", "")
		flagSet.String("format", "", "")
		flagSet.String("pattern", "", "")
		flagSet.String("config", "", "")
		flagSet.Bool("json", false, "")
		flagSet.BoolP("cbor", "c", false, "")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "close typo with double dash",
			args: []string{"--fromat"},
			want: "--format",
		},
		{
			name: "close typo with single dash",
			args: []string{"-patern"},
			want: "--pattern",
		},
		{
			name: "zone typo",
			args: []string{"--zon"},
			want: "--zone",
		},
		{
			name: "nothing close",
			args: []string{"--zzzzzzzzz"},
			want: "",
		},
		{
			name: "no flags",
			args: []string{"2017-01-01"},
			want: "",
		},
		{
			name: "flag with equals",
			args: []string{"--confg=/etc/chrono.yaml"},
			want: "--config",
		},
		{
			name: "defined flags skipped",
			args: []string{"--json", "-c", "--zome"},
			want: "--zone",
		},
		{
			name: "after terminator",
			args: []string{"--", "--fromat"},
			want: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := suggestFlag(test.args, makeFlagSet())
			if got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}
