// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdstate

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles are used for the lines a command prints after the logger is done.
type Styles struct {
	Label   lipgloss.Style
	Value   lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles returns the summary styles.
func DefaultStyles() Styles {
	return Styles{
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")),
	}
}

// Summary writes "label: value" to w.
func Summary(w io.Writer, label, value string) {
	s := DefaultStyles()
	fmt.Fprintf(w, "%s %s\n", s.Label.Render(label+":"), s.Value.Render(value)) //nolint:errcheck
}

// Notice writes msg to w in the warning style.
func Notice(w io.Writer, msg string) {
	fmt.Fprintln(w, DefaultStyles().Warning.Render(msg)) //nolint:errcheck
}
