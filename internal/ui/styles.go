/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package ui renders installer progress to the terminal. Styling follows
// Fang's colour scheme so output matches the command help pages.
package ui

import (
	"os"

	"github.com/charmbracelet/fang"
	"charm.land/lipgloss/v2"
)

// Styles contains the styles for installer output
type Styles struct {
	Stage   lipgloss.Style
	Success lipgloss.Style
	Skip    lipgloss.Style
	Failure lipgloss.Style
	Subtle  lipgloss.Style
	Banner  lipgloss.Style

	useColour bool
}

// NewStyles creates the style set. With useColour false every style is a
// no-op passthrough, for dumb terminals and tests.
func NewStyles(useColour bool) *Styles {
	s := &Styles{useColour: useColour}

	if useColour {
		hasDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
		lightDark := lipgloss.LightDark(hasDark)
		scheme := fang.DefaultColorScheme(lightDark)

		s.Stage = lipgloss.NewStyle().
			Bold(true).
			Foreground(scheme.Title)

		s.Success = lipgloss.NewStyle().
			Foreground(scheme.Flag)

		s.Skip = lipgloss.NewStyle().
			Foreground(scheme.Comment)

		s.Failure = lipgloss.NewStyle().
			Bold(true).
			Foreground(scheme.ErrorDetails)

		s.Subtle = lipgloss.NewStyle().
			Foreground(scheme.Comment)

		s.Banner = lipgloss.NewStyle().
			Bold(true).
			Foreground(scheme.Flag).
			BorderStyle(lipgloss.NormalBorder()).
			Padding(0, 1)
	} else {
		plain := lipgloss.NewStyle()
		s.Stage = plain
		s.Success = plain
		s.Skip = plain
		s.Failure = plain
		s.Subtle = plain
		s.Banner = plain
	}

	return s
}
