// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session stores the signed-in user.
//
// The store keeps a single user record in a SQLite key/value table and
// mirrors it in memory, so IsActive is a cheap synchronous check that the
// idle guard can call on every activity signal.
//
// # Key Types
//
//   - Store: SQLite-backed session record; implements idle.SessionQuery
//     and idle.Terminator
//   - User: the signed-in user
//
// # Usage
//
//	store, err := session.Open(filepath.Join(dataDir, "session.db"))
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	if err := store.Login(session.User{Name: "Ada", Email: "ada@example.com"}); err != nil {
//	    return err
//	}
package session
