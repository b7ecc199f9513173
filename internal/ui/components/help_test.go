// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHelp_Plain(t *testing.T) {
	out := RenderHelp(60, true)

	assert.Contains(t, out, "idleguard")
	assert.Contains(t, out, "15m0s")
	assert.Contains(t, out, "Sign out")
	assert.Contains(t, out, "ctrl+o")
}

func TestRenderHelp_DefaultsWidth(t *testing.T) {
	assert.Contains(t, RenderHelp(0, true), "Dismiss")
}
