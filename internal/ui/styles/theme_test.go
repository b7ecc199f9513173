// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestNewTheme_NoColorForcesAscii(t *testing.T) {
	theme := NewTheme(true)

	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
	// With the Ascii profile rendering strips all escape sequences.
	assert.Equal(t, "hello", theme.Error.Render("hello"))
}

func TestStatusIndicators_AreASCII(t *testing.T) {
	for _, s := range []string{
		StatusIndicators.Success,
		StatusIndicators.Error,
		StatusIndicators.Warning,
		StatusIndicators.Info,
	} {
		for _, r := range s {
			assert.Less(t, r, rune(128), "indicator %q is not ASCII", s)
		}
	}
}
