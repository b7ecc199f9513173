// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package idle

// Severity is the visual weight of a notification.
type Severity int

const (
	// SeverityInfo is a neutral status message.
	SeverityInfo Severity = iota
	// SeveritySuccess confirms a completed action.
	SeveritySuccess
	// SeverityWarning needs the user's attention.
	SeverityWarning
	// SeverityDestructive reports that something was lost or ended.
	SeverityDestructive
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityDestructive:
		return "destructive"
	default:
		return "unknown"
	}
}

// Notification is a user-visible message.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Text shown when a session is ended by the idle guard.
const (
	ExpiredTitle       = "Session Expired"
	ExpiredDescription = "You have been logged out due to inactivity."
)

// ExpiredNotification returns the notification posted on idle expiry.
func ExpiredNotification() Notification {
	return Notification{
		Title:       ExpiredTitle,
		Description: ExpiredDescription,
		Severity:    SeverityDestructive,
	}
}
