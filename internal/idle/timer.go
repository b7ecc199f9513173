// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package idle

import (
	"sync"
	"time"

	"github.com/jeranaias/idleguard/internal/clock"
)

// Timer holds at most one pending deadline callback.
//
// Every Reset or Cancel bumps a generation counter. A scheduled callback
// compares its generation with the current one before running, so a callback
// the runtime has already dequeued cannot fire once it has been superseded.
type Timer struct {
	mu       sync.Mutex
	clock    clock.Clock
	gen      uint64
	handle   clock.Stopper
	deadline time.Time
}

// NewTimer creates an idle Timer on the given clock.
func NewTimer(c clock.Clock) *Timer {
	if c == nil {
		c = clock.Real()
	}
	return &Timer{clock: c}
}

// Reset cancels any pending deadline and schedules onExpire to run after
// the given duration.
func (t *Timer) Reset(after time.Duration, onExpire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	gen := t.gen
	t.deadline = t.clock.Now().Add(after)
	t.handle = t.clock.AfterFunc(after, func() {
		t.mu.Lock()
		if gen != t.gen || t.handle == nil {
			t.mu.Unlock()
			return
		}
		t.handle = nil
		t.deadline = time.Time{}
		t.mu.Unlock()

		onExpire()
	})
}

// Cancel stops any pending deadline. No-op if none is pending.
func (t *Timer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Pending reports whether a deadline is scheduled.
func (t *Timer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.handle != nil
}

// Deadline returns the pending deadline, if any.
func (t *Timer) Deadline() (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.handle == nil {
		return time.Time{}, false
	}
	return t.deadline, true
}

// stopLocked invalidates the current handle. Caller holds t.mu.
func (t *Timer) stopLocked() {
	t.gen++
	if t.handle != nil {
		t.handle.Stop()
		t.handle = nil
	}
	t.deadline = time.Time{}
}
