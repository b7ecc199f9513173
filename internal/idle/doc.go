// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package idle enforces the idle-logout policy for an interactive session.
//
// A Guard listens to an activity.Source for the lifetime of the hosting
// view. Every activity signal re-checks the session store: while a session
// is active the single idle Timer is pushed out to InactivityLimit from now;
// once the session is gone the timer is canceled. If the timer runs out the
// guard logs the user out, posts a "Session Expired" notification and
// navigates to the login route, in that order.
//
// # Key Types
//
//   - Guard: the Inactive/Monitoring/Expiring state machine
//   - Timer: single-deadline timer with Reset and Cancel
//   - SessionQuery, Terminator, Notifier, Navigator: collaborators
//
// # Usage
//
//	guard, err := idle.NewGuard(idle.Deps{
//	    Source:     bus,
//	    Query:      store,
//	    Terminator: store,
//	    Notifier:   toasts,
//	    Navigator:  router,
//	})
//	if err != nil {
//	    return err
//	}
//	guard.Mount()
//	defer guard.Unmount()
//
// # Compliance
//
// InactivityLimit is 15 minutes, the AC-12 session termination limit. It is
// a build-time constant and cannot be changed through configuration.
package idle
