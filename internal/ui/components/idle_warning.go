// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/idleguard/internal/ui/styles"
)

// =============================================================================
// IDLE WARNING
// =============================================================================

// IdleWarningThreshold is how close to the idle deadline the warning appears.
const IdleWarningThreshold = 2 * time.Minute

// ShowIdleWarning reports whether the warning should be visible.
func ShowIdleWarning(remaining time.Duration) bool {
	return remaining > 0 && remaining <= IdleWarningThreshold
}

// RenderIdleWarning renders the box shown shortly before an idle logout.
// Any input dismisses it because input resets the idle timer.
func RenderIdleWarning(remaining time.Duration, width int) string {
	maxWidth := width - 8
	if maxWidth < 40 {
		maxWidth = 40
	}
	if maxWidth > 60 {
		maxWidth = 60
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Amber).
		Bold(true)
	timeStyle := lipgloss.NewStyle().
		Foreground(styles.Amber).
		Bold(true)
	msgStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Width(maxWidth - 8).
		Align(lipgloss.Center)
	hintStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Italic(true)

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(styles.StatusIndicators.Warning+" Idle Timeout Warning"),
		"",
		msgStyle.Render("Signing out in "+timeStyle.Render(FormatRemaining(remaining))),
		"",
		hintStyle.Render("Press any key to stay signed in"),
	)

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(styles.Amber).
		Padding(1, 3).
		Width(maxWidth).
		Align(lipgloss.Center).
		Render(content)
}

// FormatRemaining formats a duration as M:SS, rounding down.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
