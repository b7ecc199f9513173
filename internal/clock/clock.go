// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package clock abstracts wall-clock time and deadline callbacks so timers
// can be driven by a synthetic clock in tests.
package clock

import "time"

// Stopper cancels a scheduled callback.
// Stop reports whether the call prevented the callback from running.
type Stopper interface {
	Stop() bool
}

// Clock provides the current time and deadline callbacks.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc schedules f to run once after d has elapsed.
	AfterFunc(d time.Duration, f func()) Stopper
}

// realClock is backed by the time package.
type realClock struct{}

// Real returns a Clock backed by time.Now and time.AfterFunc.
// Callbacks run on their own goroutine.
func Real() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}
