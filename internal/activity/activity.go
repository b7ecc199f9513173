// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package activity publishes user interaction signals.
//
// A Source delivers a bare "activity observed" callback for a fixed set of
// interaction kinds. It does not filter, debounce, or inspect payloads: every
// qualifying input produces exactly one handler call.
package activity

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind identifies an interaction kind.
type Kind int

const (
	// PointerMove is mouse motion.
	PointerMove Kind = iota
	// PointerDown is a mouse button press.
	PointerDown
	// KeyDown is a key press.
	KeyDown
	// TouchStart is the start of a touch gesture.
	TouchStart
	// Scroll is wheel or scroll input.
	Scroll
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case PointerMove:
		return "pointermove"
	case PointerDown:
		return "pointerdown"
	case KeyDown:
		return "keydown"
	case TouchStart:
		return "touchstart"
	case Scroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Kinds returns the fixed set of kinds that count as user activity.
func Kinds() []Kind {
	return []Kind{PointerMove, PointerDown, KeyDown, TouchStart, Scroll}
}

// Unsubscribe removes the registrations made by one Subscribe call.
// Calls after the first are no-ops.
type Unsubscribe func()

// Source registers activity handlers.
type Source interface {
	Subscribe(kinds []Kind, handler func()) Unsubscribe
}

// =============================================================================
// BUS
// =============================================================================

// Bus is the process-wide input channel. The terminal host dispatches raw
// input into it; subscribers receive one call per dispatched event.
type Bus struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[Kind]map[uint64]func()
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Kind]map[uint64]func()),
	}
}

// Subscribe registers handler for each kind. Duplicate kinds in the list
// register once.
func (b *Bus) Subscribe(kinds []Kind, handler func()) Unsubscribe {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	registered := make([]Kind, 0, len(kinds))
	for _, k := range kinds {
		set, ok := b.handlers[k]
		if !ok {
			set = make(map[uint64]func())
			b.handlers[k] = set
		}
		if _, dup := set[id]; dup {
			continue
		}
		set[id] = handler
		registered = append(registered, k)
	}
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			for _, k := range registered {
				delete(b.handlers[k], id)
				if len(b.handlers[k]) == 0 {
					delete(b.handlers, k)
				}
			}
		})
	}
}

// Dispatch delivers one event of the given kind to every handler registered
// for it. Handlers run on the calling goroutine, outside the bus lock.
func (b *Bus) Dispatch(kind Kind) {
	b.mu.Lock()
	set := b.handlers[kind]
	fns := make([]func(), 0, len(set))
	for _, fn := range set {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Handlers returns the number of handlers registered for kind.
func (b *Bus) Handlers(kind Kind) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers[kind])
}

// =============================================================================
// BUBBLE TEA INPUT
// =============================================================================

// FromMsg maps a Bubble Tea input message to an activity kind.
// Terminals have no touch input, so TouchStart is never produced here.
func FromMsg(msg tea.Msg) (Kind, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return KeyDown, true
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
			tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
			return Scroll, true
		}
		switch msg.Action {
		case tea.MouseActionMotion:
			return PointerMove, true
		case tea.MouseActionPress:
			return PointerDown, true
		}
	}
	return 0, false
}

// Feed dispatches msg into the bus if it is user activity.
// It reports whether anything was dispatched.
func (b *Bus) Feed(msg tea.Msg) bool {
	kind, ok := FromMsg(msg)
	if !ok {
		return false
	}
	b.Dispatch(kind)
	return true
}
