// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the terminal host for the idle guard.
//
// The Bubble Tea program plays the part of the page: its Update loop is the
// single event thread, key and mouse messages are the input channel, and the
// model's route is the active view. The guard is mounted when the program
// starts and unmounted when it exits.
//
// # Routes
//
//   - /login: sign-in form (name, email, optional phone)
//   - /: signed-in home view with the idle countdown
//
// # Key Bindings
//
//   - tab / shift+tab: move between login fields
//   - enter: submit the login form
//   - ctrl+o: sign out
//   - x: dismiss the newest toast
//   - ?: toggle the help view (esc closes it)
//   - ctrl+c: quit
package app
