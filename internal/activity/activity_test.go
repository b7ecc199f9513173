// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package activity

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

// =============================================================================
// BUS TESTS
// =============================================================================

func TestBus_DispatchInvokesHandlerOncePerEvent(t *testing.T) {
	b := NewBus()
	calls := 0
	b.Subscribe(Kinds(), func() { calls++ })

	for _, k := range Kinds() {
		b.Dispatch(k)
	}
	b.Dispatch(KeyDown)
	b.Dispatch(KeyDown)

	assert.Equal(t, len(Kinds())+2, calls)
}

func TestBus_OnlySubscribedKinds(t *testing.T) {
	b := NewBus()
	calls := 0
	b.Subscribe([]Kind{KeyDown}, func() { calls++ })

	b.Dispatch(PointerMove)
	b.Dispatch(Scroll)
	assert.Zero(t, calls)

	b.Dispatch(KeyDown)
	assert.Equal(t, 1, calls)
}

func TestBus_DuplicateKindsRegisterOnce(t *testing.T) {
	b := NewBus()
	calls := 0
	b.Subscribe([]Kind{Scroll, Scroll, Scroll}, func() { calls++ })

	b.Dispatch(Scroll)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, b.Handlers(Scroll))
}

func TestBus_UnsubscribeRemovesAllRegistrations(t *testing.T) {
	b := NewBus()
	calls := 0
	unsub := b.Subscribe(Kinds(), func() { calls++ })

	unsub()
	for _, k := range Kinds() {
		b.Dispatch(k)
		assert.Zero(t, b.Handlers(k), "kind %s still has handlers", k)
	}
	assert.Zero(t, calls)
}

func TestBus_UnsubscribeIsIdempotent(t *testing.T) {
	b := NewBus()
	first := 0
	second := 0
	unsubFirst := b.Subscribe(Kinds(), func() { first++ })
	b.Subscribe(Kinds(), func() { second++ })

	unsubFirst()
	assert.NotPanics(t, func() { unsubFirst() })

	b.Dispatch(KeyDown)
	assert.Zero(t, first)
	assert.Equal(t, 1, second, "other subscription must survive repeated unsubscribe")
}

func TestBus_HandlerMayUnsubscribeItself(t *testing.T) {
	b := NewBus()
	calls := 0
	var unsub Unsubscribe
	unsub = b.Subscribe([]Kind{KeyDown}, func() {
		calls++
		unsub()
	})

	b.Dispatch(KeyDown)
	b.Dispatch(KeyDown)
	assert.Equal(t, 1, calls)
}

// =============================================================================
// MESSAGE MAPPING TESTS
// =============================================================================

func TestFromMsg(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.Msg
		want   Kind
		wantOK bool
	}{
		{"key press", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, KeyDown, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, KeyDown, true},
		{"mouse motion", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, PointerMove, true},
		{"left click", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, PointerDown, true},
		{"wheel up", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, Scroll, true},
		{"wheel down", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, Scroll, true},
		{"mouse release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, 0, false},
		{"window size", tea.WindowSizeMsg{Width: 80, Height: 24}, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromMsg(tt.msg)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBus_Feed(t *testing.T) {
	b := NewBus()
	var seen []Kind
	for _, k := range Kinds() {
		k := k
		b.Subscribe([]Kind{k}, func() { seen = append(seen, k) })
	}

	assert.True(t, b.Feed(tea.KeyMsg{Type: tea.KeySpace}))
	assert.False(t, b.Feed(tea.WindowSizeMsg{}))
	assert.Equal(t, []Kind{KeyDown}, seen)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "keydown", KeyDown.String())
	assert.Equal(t, "touchstart", TouchStart.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
