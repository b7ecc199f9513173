// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/idleguard/internal/idle"
)

// =============================================================================
// HELP
// =============================================================================

// helpMarkdown is the source of the help view.
var helpMarkdown = fmt.Sprintf(`# idleguard

You are signed out automatically after %v without keyboard or mouse
input. A warning appears when %v remain; any key keeps you signed in.

## Keys

| Key | Action |
|-----|--------|
| ctrl+o | Sign out |
| x | Dismiss the newest notification |
| ? | Toggle this help |
| q, ctrl+c | Quit |
`, idle.InactivityLimit, IdleWarningThreshold)

// RenderHelp renders the help view as markdown for the given width.
// plain selects a style without colors. Returns the raw markdown if the
// renderer cannot be built.
func RenderHelp(width int, plain bool) string {
	if width <= 0 || width > 80 {
		width = 80
	}
	style := "dark"
	if plain {
		style = "notty"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
