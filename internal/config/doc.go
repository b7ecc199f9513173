// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads idleguard configuration.
//
// Configuration is read from ~/.idleguard/config.toml when present, then
// environment overrides are applied:
//
//   - IDLEGUARD_DATA_DIR: overrides storage.data_dir
//   - IDLEGUARD_SESSION_DB: overrides storage.session_db
//   - IDLEGUARD_AUDIT: overrides audit.enabled
//   - IDLEGUARD_AUDIT_LOG: overrides audit.log_file
//   - IDLEGUARD_NO_COLOR: overrides ui.no_color
//   - IDLEGUARD_MOUSE: overrides ui.mouse
//
// The idle limit itself is not configurable; see package idle.
package config
