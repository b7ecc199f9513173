// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the idleguard TUI.
//
// Toasts appear in the bottom-right corner and auto-dismiss, so the user
// can keep working while a notification is on screen.
package components

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/idleguard/internal/idle"
	"github.com/jeranaias/idleguard/internal/ui/styles"
)

// =============================================================================
// TOAST
// =============================================================================

// Auto-dismiss durations per severity.
const (
	DefaultToastDuration     = 4 * time.Second
	WarningToastDuration     = 6 * time.Second
	DestructiveToastDuration = 8 * time.Second
)

// maxToasts is the number of toasts kept on screen at once.
const maxToasts = 5

// Toast is one on-screen notification.
type Toast struct {
	ID           int
	Notification idle.Notification
	CreatedAt    time.Time
	Duration     time.Duration
}

// DurationFor returns the auto-dismiss duration for a severity.
func DurationFor(s idle.Severity) time.Duration {
	switch s {
	case idle.SeverityDestructive:
		return DestructiveToastDuration
	case idle.SeverityWarning:
		return WarningToastDuration
	default:
		return DefaultToastDuration
	}
}

// Expired reports whether the toast should be gone at now.
func (t Toast) Expired(now time.Time) bool {
	return !now.Before(t.CreatedAt.Add(t.Duration))
}

// Remaining returns how long the toast stays on screen after now.
func (t Toast) Remaining(now time.Time) time.Duration {
	r := t.CreatedAt.Add(t.Duration).Sub(now)
	if r < 0 {
		return 0
	}
	return r
}

// =============================================================================
// TOAST STACK
// =============================================================================

// ToastStack holds the visible toasts, newest first.
type ToastStack struct {
	mu     sync.Mutex
	toasts []Toast
	nextID int
}

// NewToastStack creates an empty stack.
func NewToastStack() *ToastStack {
	return &ToastStack{nextID: 1}
}

// Push adds a notification shown from now. Returns the toast ID.
func (s *ToastStack) Push(n idle.Notification, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := Toast{
		ID:           s.nextID,
		Notification: n,
		CreatedAt:    now,
		Duration:     DurationFor(n.Severity),
	}
	s.nextID++

	s.toasts = append([]Toast{t}, s.toasts...)
	if len(s.toasts) > maxToasts {
		s.toasts = s.toasts[:maxToasts]
	}
	return t.ID
}

// Dismiss removes the toast with the given ID.
func (s *ToastStack) Dismiss(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}

// Tick drops toasts that have expired at now.
func (s *ToastStack) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.toasts[:0]
	for _, t := range s.toasts {
		if !t.Expired(now) {
			active = append(active, t)
		}
	}
	s.toasts = active
}

// Toasts returns a copy of the visible toasts.
func (s *ToastStack) Toasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// Len returns the number of visible toasts.
func (s *ToastStack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.toasts)
}

// =============================================================================
// RENDERING
// =============================================================================

// RenderToast renders one toast for a terminal of the given width.
func RenderToast(t Toast, width int, now time.Time) string {
	maxWidth := 60
	if width > 0 && width-8 < maxWidth {
		maxWidth = width - 8
	}
	if maxWidth < 30 {
		maxWidth = 30
	}
	textWidth := maxWidth - 6

	var color lipgloss.AdaptiveColor
	var icon string
	switch t.Notification.Severity {
	case idle.SeverityDestructive:
		color, icon = styles.Rose, styles.StatusIndicators.Error
	case idle.SeverityWarning:
		color, icon = styles.Amber, styles.StatusIndicators.Warning
	case idle.SeveritySuccess:
		color, icon = styles.Emerald, styles.StatusIndicators.Success
	default:
		color, icon = styles.Cyan, styles.StatusIndicators.Info
	}

	title := runewidth.Truncate(icon+" "+t.Notification.Title, textWidth, "...")
	lines := []string{
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(title),
	}
	if t.Notification.Description != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(styles.TextPrimary).
			Render(wrapText(t.Notification.Description, textWidth)))
	}
	if secs := int(t.Remaining(now).Seconds()); secs > 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Render(fmt.Sprintf("[x] Dismiss  %ds", secs)))
	}

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 2).
		MaxWidth(maxWidth).
		Render(strings.Join(lines, "\n"))
}

// RenderToastStack renders toasts stacked in the bottom-right corner.
func RenderToastStack(toasts []Toast, width, height int, now time.Time) string {
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, RenderToast(t, width, now))
	}
	stack := lipgloss.NewStyle().
		MarginRight(2).
		MarginBottom(1).
		Render(lipgloss.JoinVertical(lipgloss.Right, rendered...))

	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Right, lipgloss.Bottom, stack)
	}
	return stack
}

// wrapText word-wraps text to maxWidth display cells.
func wrapText(text string, maxWidth int) string {
	words := strings.Fields(text)
	if maxWidth <= 0 || len(words) == 0 {
		return text
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range words {
		w := runewidth.StringWidth(word)
		switch {
		case lineWidth == 0:
			line.WriteString(word)
			lineWidth = w
		case lineWidth+1+w <= maxWidth:
			line.WriteString(" ")
			line.WriteString(word)
			lineWidth += 1 + w
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineWidth = w
		}
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
