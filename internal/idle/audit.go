// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package idle

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"
)

// Audit event names written by the guard (AU-3).
const (
	EventMounted   = "IDLE_GUARD_MOUNTED"
	EventReset     = "IDLE_TIMER_RESET"
	EventCanceled  = "IDLE_TIMER_CANCELED"
	EventExpired   = "SESSION_EXPIRED_IDLE"
	EventUnmounted = "IDLE_GUARD_UNMOUNTED"
)

// resetLogInterval bounds how often IDLE_TIMER_RESET is written. Pointer
// motion can reset the timer hundreds of times a second.
const resetLogInterval = time.Minute

// auditLog writes guard events in the session audit format.
type auditLog struct {
	logger     *log.Logger
	resets     *rate.Limiter
	suppressed int
}

func newAuditLog(logger *log.Logger) *auditLog {
	return &auditLog{
		logger: logger,
		resets: rate.NewLimiter(rate.Every(resetLogInterval), 1),
	}
}

// event writes one audit line stamped with now.
func (a *auditLog) event(now time.Time, eventType, sessionID, details string) {
	if a.logger == nil {
		return
	}
	if sessionID == "" {
		sessionID = "none"
	}
	timestamp := now.UTC().Format("2006-01-02 15:04:05 UTC")
	a.logger.Printf("%s | %s | session=%s %s", timestamp, eventType, sessionID, details)
}

// reset writes a throttled IDLE_TIMER_RESET line. Suppressed resets are
// counted into the next line that gets through.
func (a *auditLog) reset(now time.Time, sessionID string, deadline time.Time) {
	if a.logger == nil {
		return
	}
	if !a.resets.AllowN(now, 1) {
		a.suppressed++
		return
	}
	details := fmt.Sprintf("deadline=%s", deadline.UTC().Format(time.RFC3339))
	if a.suppressed > 0 {
		details += fmt.Sprintf(" suppressed=%d", a.suppressed)
		a.suppressed = 0
	}
	a.event(now, EventReset, sessionID, details)
}
