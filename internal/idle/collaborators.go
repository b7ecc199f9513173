// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package idle

// SessionQuery reports whether a user session is currently authenticated.
// IsActive must be synchronous and free of side effects.
type SessionQuery interface {
	IsActive() bool
}

// Terminator ends the current session. After Logout returns, IsActive on the
// matching SessionQuery must report false.
type Terminator interface {
	Logout()
}

// Notifier surfaces a message to the user. Fire-and-forget.
type Notifier interface {
	Notify(n Notification)
}

// Navigator changes the active route. Fire-and-forget.
type Navigator interface {
	Go(path string)
}

// sessionIdentifier is implemented by session stores that can name the
// current session for audit lines.
type sessionIdentifier interface {
	SessionID() string
}

// QueryFunc adapts a function to SessionQuery.
type QueryFunc func() bool

// IsActive calls f.
func (f QueryFunc) IsActive() bool { return f() }

// TerminatorFunc adapts a function to Terminator.
type TerminatorFunc func()

// Logout calls f.
func (f TerminatorFunc) Logout() { f() }

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

// Notify calls f.
func (f NotifierFunc) Notify(n Notification) { f(n) }

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(string)

// Go calls f.
func (f NavigatorFunc) Go(path string) { f(path) }
