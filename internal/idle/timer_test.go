// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package idle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/idleguard/internal/clock"
)

var epoch = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func TestTimer_OnlyMostRecentResetFires(t *testing.T) {
	c := clock.NewFake(epoch)
	tm := NewTimer(c)
	var fired []int

	for i := 1; i <= 5; i++ {
		i := i
		tm.Reset(time.Duration(i)*time.Minute, func() { fired = append(fired, i) })
	}
	require.Equal(t, 1, c.Pending(), "superseded deadlines must be released")

	// Past every superseded deadline but short of the last one.
	c.Advance(4*time.Minute + 59*time.Second)
	assert.Empty(t, fired)

	c.Advance(time.Second)
	assert.Equal(t, []int{5}, fired)
	assert.False(t, tm.Pending())
}

func TestTimer_ShorterResetSupersedesLonger(t *testing.T) {
	c := clock.NewFake(epoch)
	tm := NewTimer(c)
	var fired []string

	tm.Reset(10*time.Minute, func() { fired = append(fired, "long") })
	tm.Reset(time.Minute, func() { fired = append(fired, "short") })

	c.Advance(time.Hour)
	assert.Equal(t, []string{"short"}, fired)
}

func TestTimer_Cancel(t *testing.T) {
	c := clock.NewFake(epoch)
	tm := NewTimer(c)
	fired := 0

	tm.Cancel() // nothing pending
	tm.Reset(time.Minute, func() { fired++ })
	tm.Cancel()
	tm.Cancel()

	c.Advance(time.Hour)
	assert.Zero(t, fired)
	assert.False(t, tm.Pending())
	assert.Zero(t, c.Pending())
}

func TestTimer_Deadline(t *testing.T) {
	c := clock.NewFake(epoch)
	tm := NewTimer(c)

	_, ok := tm.Deadline()
	assert.False(t, ok)

	tm.Reset(InactivityLimit, func() {})
	d, ok := tm.Deadline()
	require.True(t, ok)
	assert.Equal(t, epoch.Add(InactivityLimit), d)

	c.Advance(InactivityLimit)
	_, ok = tm.Deadline()
	assert.False(t, ok)
}

func TestTimer_ResetFromCallback(t *testing.T) {
	c := clock.NewFake(epoch)
	tm := NewTimer(c)
	count := 0
	var rearm func()
	rearm = func() {
		count++
		if count < 3 {
			tm.Reset(time.Minute, rearm)
		}
	}
	tm.Reset(time.Minute, rearm)

	c.Advance(10 * time.Minute)
	assert.Equal(t, 3, count)
	assert.False(t, tm.Pending())
}

// staleClock simulates a runtime timer that was already dequeued: Stop
// reports failure and the callback is still delivered later.
type staleClock struct {
	callbacks []func()
}

type noopStopper struct{}

func (noopStopper) Stop() bool { return false }

func (s *staleClock) Now() time.Time { return epoch }

func (s *staleClock) AfterFunc(_ time.Duration, f func()) clock.Stopper {
	s.callbacks = append(s.callbacks, f)
	return noopStopper{}
}

func TestTimer_CancelInvalidatesDequeuedCallback(t *testing.T) {
	sc := &staleClock{}
	tm := NewTimer(sc)
	fired := 0

	tm.Reset(time.Minute, func() { fired++ })
	tm.Cancel()
	tm.Reset(time.Minute, func() { fired += 10 })

	require.Len(t, sc.callbacks, 2)
	// The runtime delivers both; only the live one may run.
	sc.callbacks[0]()
	assert.Zero(t, fired)
	sc.callbacks[1]()
	assert.Equal(t, 10, fired)
	// Delivering the live one twice must not fire twice.
	sc.callbacks[1]()
	assert.Equal(t, 10, fired)
}
