// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// labelWidth aligns the values of text reports.
const labelWidth = 16

// Styles renders the labels and verdicts of text reports. Styling is
// applied only when the destination is a terminal, so piped output is
// plain aligned text.
type Styles struct {
	enabled bool
	label   lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	muted   lipgloss.Style
}

// NewStyles returns Styles for w. Styling is enabled when w is an
// *os.File attached to a terminal.
func NewStyles(w io.Writer) Styles {
	file, ok := w.(*os.File)
	return newStyles(ok && term.IsTerminal(int(file.Fd())))
}

func newStyles(enabled bool) Styles {
	return Styles{
		enabled: enabled,
		label: lipgloss.NewStyle().
			Width(labelWidth).
			Bold(true).
			Foreground(lipgloss.Color("12")),
		good:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		bad:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Label renders a report label padded to a fixed width.
func (s Styles) Label(text string) string {
	if !s.enabled {
		return fmt.Sprintf("%-*s", labelWidth, text)
	}
	return s.label.Render(text)
}

// Verdict renders a boolean result as "yes" or "no".
func (s Styles) Verdict(value bool) string {
	switch {
	case !s.enabled && value:
		return "yes"
	case !s.enabled:
		return "no"
	case value:
		return s.good.Render("yes")
	default:
		return s.bad.Render("no")
	}
}

// Muted renders secondary text such as "(none)".
func (s Styles) Muted(text string) string {
	if !s.enabled {
		return text
	}
	return s.muted.Render(text)
}
