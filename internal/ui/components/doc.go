// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the rendered pieces of the idleguard TUI.

# Components

Toast (toast.go) - Auto-dismissing notifications. ToastStack keeps the newest
first and drops toasts whose duration has elapsed on Tick.

IdleWarning (idle_warning.go) - Amber box shown in the final minutes before an
idle logout, with an M:SS countdown.

The app model owns these and drives them from its Update loop.
*/
package components
