// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"net/url"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/idleguard/internal/idle"
)

// Known routes.
const (
	RouteHome  = "/"
	RouteLogin = idle.LoginPath
)

// NavigateMsg asks the model to switch routes.
type NavigateMsg struct {
	Path string
}

// NotifyMsg asks the model to show a toast.
type NotifyMsg struct {
	Notification idle.Notification
}

// Poster delivers a message to the running program.
type Poster func(tea.Msg)

// Router implements idle.Navigator and idle.Notifier by posting messages
// into the program. Posting happens on a background goroutine so the caller
// never waits on the Update loop; messages are delivered in call order.
type Router struct {
	post Poster

	mu       sync.Mutex
	queue    []tea.Msg
	draining bool
}

// NewRouter creates a Router that posts through p.
func NewRouter(p Poster) *Router {
	return &Router{post: p}
}

// Go posts a NavigateMsg.
func (r *Router) Go(path string) {
	r.enqueue(NavigateMsg{Path: path})
}

// Notify posts a NotifyMsg.
func (r *Router) Notify(n idle.Notification) {
	r.enqueue(NotifyMsg{Notification: n})
}

// enqueue appends msg and starts a drain goroutine if none is running.
func (r *Router) enqueue(msg tea.Msg) {
	r.mu.Lock()
	r.queue = append(r.queue, msg)
	if r.draining {
		r.mu.Unlock()
		return
	}
	r.draining = true
	r.mu.Unlock()

	go r.drain()
}

func (r *Router) drain() {
	for {
		r.mu.Lock()
		if len(r.queue) == 0 {
			r.draining = false
			r.mu.Unlock()
			return
		}
		msg := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()

		r.post(msg)
	}
}

// parseRoute splits a path such as "/login?returnUrl=%2F" into the route and
// the return target. Unknown routes resolve to home.
func parseRoute(path string) (route, returnTo string) {
	u, err := url.Parse(path)
	if err != nil {
		return RouteHome, ""
	}
	switch u.Path {
	case RouteLogin:
		return RouteLogin, u.Query().Get("returnUrl")
	default:
		return RouteHome, ""
	}
}
