// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the idleguard command line.
//
// Commands:
//
//	idleguard                     Run the terminal UI (same as "tui")
//	idleguard tui                 Run the terminal UI
//	idleguard login               Sign in without the UI
//	idleguard logout              End the stored session
//	idleguard status [--json]     Show the signed-in user
//	idleguard config [show|init|path]
//	idleguard version
//
// Global flags:
//
//	--config PATH                 Config file (default ~/.idleguard/config.toml)
package cli
