// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styles shared by the TUI views.
type Theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Hint    lipgloss.Style
	Panel   lipgloss.Style
	Focused lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// NewTheme detects the terminal color profile and builds the styles.
// When noColor is set the Ascii profile is forced for the whole process.
func NewTheme(noColor bool) *Theme {
	profile := termenv.ColorProfile()
	if noColor {
		profile = termenv.Ascii
	}
	lipgloss.SetColorProfile(profile)

	return &Theme{
		Title:   lipgloss.NewStyle().Foreground(Cyan).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(TextSecondary),
		Value:   lipgloss.NewStyle().Foreground(TextPrimary),
		Hint:    lipgloss.NewStyle().Foreground(TextMuted).Italic(true),
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Overlay).
			Padding(1, 3),
		Focused: lipgloss.NewStyle().Foreground(Cyan),
		Error:   lipgloss.NewStyle().Foreground(Rose).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(Amber).Bold(true),
	}
}
