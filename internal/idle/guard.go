// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package idle

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jeranaias/idleguard/internal/activity"
	"github.com/jeranaias/idleguard/internal/clock"
)

// =============================================================================
// CONSTANTS
// =============================================================================

// InactivityLimit is how long a session may go without user activity before
// it is terminated: 15 minutes (900 seconds) per AC-12.
const InactivityLimit = 15 * time.Minute

// LoginPath is the route the guard navigates to after an idle logout.
const LoginPath = "/login"

// ErrMissingCollaborator is returned by NewGuard when a dependency is nil.
var ErrMissingCollaborator = errors.New("idle guard: missing collaborator")

// =============================================================================
// STATE
// =============================================================================

// State is the guard's position in the idle state machine.
type State int

const (
	// Inactive means no session is active and no timer is running.
	Inactive State = iota
	// Monitoring means a session is active and the idle timer is running.
	Monitoring
	// Expiring means the idle timer fired and the logout sequence is running.
	Expiring
)

// String returns a string representation of the State.
func (s State) String() string {
	switch s {
	case Inactive:
		return "INACTIVE"
	case Monitoring:
		return "MONITORING"
	case Expiring:
		return "EXPIRING"
	default:
		return "UNKNOWN"
	}
}

// Status is a point-in-time view of the guard.
type Status struct {
	State     State
	Deadline  time.Time
	Remaining time.Duration
}

// =============================================================================
// GUARD
// =============================================================================

// Deps are the collaborators a Guard needs. None are owned by the guard.
type Deps struct {
	Source     activity.Source
	Query      SessionQuery
	Terminator Terminator
	Notifier   Notifier
	Navigator  Navigator
}

// Option configures a Guard.
type Option func(*Guard)

// WithClock sets the clock used for the idle timer. Defaults to clock.Real().
func WithClock(c clock.Clock) Option {
	return func(g *Guard) {
		g.clock = c
	}
}

// WithLogger sets the audit logger. A nil logger disables audit lines.
// Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(g *Guard) {
		g.logger = l
	}
}

// Guard enforces the idle-logout policy for the lifetime of one view.
//
// All entry points (Mount, activity, expiry, Unmount) run one at a time.
// The logout sequence runs with the guard unlocked, so a collaborator may
// deliver activity synchronously; while Expiring such activity can only
// cancel, never re-arm.
type Guard struct {
	mu sync.Mutex

	deps   Deps
	clock  clock.Clock
	logger *log.Logger
	audit  *auditLog
	timer  *Timer

	state State
	// epoch identifies the live deadline. Bumped on every arm/disarm so an
	// expiry callback from an earlier deadline is recognised and dropped.
	epoch       uint64
	unsubscribe activity.Unsubscribe
	mounted     bool
	unmounted   bool
}

// NewGuard creates an unmounted Guard.
func NewGuard(deps Deps, opts ...Option) (*Guard, error) {
	missing := []string{}
	if deps.Source == nil {
		missing = append(missing, "source")
	}
	if deps.Query == nil {
		missing = append(missing, "query")
	}
	if deps.Terminator == nil {
		missing = append(missing, "terminator")
	}
	if deps.Notifier == nil {
		missing = append(missing, "notifier")
	}
	if deps.Navigator == nil {
		missing = append(missing, "navigator")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingCollaborator, missing)
	}

	g := &Guard{
		deps:   deps,
		clock:  clock.Real(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = clock.Real()
	}
	g.timer = NewTimer(g.clock)
	g.audit = newAuditLog(g.logger)
	return g, nil
}

// Mount subscribes to activity and arms the timer if a session is active.
// Only the first call has any effect, and a guard cannot be remounted after
// Unmount.
func (g *Guard) Mount() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.mounted || g.unmounted {
		return
	}
	g.mounted = true
	g.unsubscribe = g.deps.Source.Subscribe(activity.Kinds(), g.onActivity)

	active := g.deps.Query.IsActive()
	g.audit.event(g.clock.Now(), EventMounted, g.sessionID(), fmt.Sprintf("active=%t limit=%v", active, InactivityLimit))
	if active {
		g.armLocked()
	}
}

// Unmount cancels the timer and removes all activity subscriptions.
// Terminal and idempotent.
func (g *Guard) Unmount() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.unmounted {
		return
	}
	g.unmounted = true
	g.timer.Cancel()
	g.epoch++
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
	prev := g.state
	g.state = Inactive

	if g.mounted {
		g.audit.event(g.clock.Now(), EventUnmounted, g.sessionID(), fmt.Sprintf("state=%s", prev))
	}
}

// State returns the current state.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Status returns the state along with the pending deadline, if any.
func (g *Guard) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := Status{State: g.state}
	if deadline, ok := g.timer.Deadline(); ok {
		st.Deadline = deadline
		st.Remaining = deadline.Sub(g.clock.Now())
		if st.Remaining < 0 {
			st.Remaining = 0
		}
	}
	return st
}

// onActivity handles one activity signal.
func (g *Guard) onActivity() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.unmounted || !g.mounted {
		return
	}
	// Always ask the store; it is the authority on whether a session exists.
	active := g.deps.Query.IsActive()
	switch {
	case !active:
		g.disarmLocked()
	case g.state == Expiring:
		// Logout has not landed yet; the expiry in flight wins.
	default:
		g.armLocked()
	}
}

// armLocked (re)starts the idle timer and enters Monitoring.
func (g *Guard) armLocked() {
	g.epoch++
	epoch := g.epoch
	g.timer.Reset(InactivityLimit, func() {
		g.expire(epoch)
	})
	g.state = Monitoring

	now := g.clock.Now()
	g.audit.reset(now, g.sessionID(), now.Add(InactivityLimit))
}

// disarmLocked cancels the idle timer and enters Inactive.
func (g *Guard) disarmLocked() {
	wasPending := g.timer.Pending()
	g.timer.Cancel()
	g.epoch++
	g.state = Inactive

	if wasPending {
		g.audit.event(g.clock.Now(), EventCanceled, g.sessionID(), "reason=session_inactive")
	}
}

// expire runs the logout sequence for the deadline identified by epoch.
// Collaborators are called without holding g.mu.
func (g *Guard) expire(epoch uint64) {
	g.mu.Lock()
	if g.unmounted || epoch != g.epoch || g.state != Monitoring {
		g.mu.Unlock()
		return
	}
	g.state = Expiring
	g.epoch++
	sessionID := g.sessionID()
	g.mu.Unlock()

	// Logout first so any re-check after this point sees no session.
	g.deps.Terminator.Logout()
	g.deps.Notifier.Notify(ExpiredNotification())
	g.deps.Navigator.Go(LoginPath)

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == Expiring {
		g.state = Inactive
	}
	g.audit.event(g.clock.Now(), EventExpired, sessionID, fmt.Sprintf("idle=%v redirect=%s", InactivityLimit, LoginPath))
}

// sessionID names the current session for audit lines, if the query knows it.
func (g *Guard) sessionID() string {
	if id, ok := g.deps.Query.(sessionIdentifier); ok {
		return id.SessionID()
	}
	return ""
}
