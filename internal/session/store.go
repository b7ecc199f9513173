// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrNotLoggedIn   = errors.New("no user is logged in")
	ErrInvalidUser   = errors.New("invalid user")
	ErrDatabaseError = errors.New("database error")
)

// userKey is the key the signed-in user is stored under.
const userKey = "current_user"

// schema holds the key/value table backing the store.
const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);`

// =============================================================================
// USER
// =============================================================================

// User is the signed-in user.
type User struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	LoginTime time.Time `json:"loginTime"`
	SessionID string    `json:"sessionId"`
}

// Validate checks the fields required to sign in.
func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidUser)
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidUser)
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return fmt.Errorf("%w: email %q is not valid", ErrInvalidUser, u.Email)
	}
	return nil
}

// =============================================================================
// STORE
// =============================================================================

// Store persists the signed-in user.
type Store struct {
	db  *sql.DB
	mu  sync.RWMutex
	cur *User

	// now is overridable in tests.
	now func() time.Time
}

// Open opens (creating if needed) the session database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}
	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// load reads the stored user into memory. A corrupt record is deleted and
// the store starts signed out.
func (s *Store) load() error {
	var raw string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", userKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		log.Printf("SESSION_STORE: discarding unreadable user record: %v", err)
		if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", userKey); err != nil {
			return fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
		return nil
	}
	s.cur = &u
	return nil
}

// Login stores u as the signed-in user, replacing any previous one.
// LoginTime and SessionID are filled in when empty.
func (s *Store) Login(u User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if u.LoginTime.IsZero() {
		u.LoginTime = s.now().UTC()
	}
	if u.SessionID == "" {
		u.SessionID = "sess_" + uuid.NewString()
	}

	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		userKey, string(data), s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	s.cur = &u
	return nil
}

// IsActive reports whether a user is signed in.
func (s *Store) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur != nil
}

// CurrentUser returns a copy of the signed-in user.
func (s *Store) CurrentUser() (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return User{}, ErrNotLoggedIn
	}
	return *s.cur, nil
}

// SessionID returns the current session identifier, or "" when signed out.
func (s *Store) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return ""
	}
	return s.cur.SessionID
}

// Logout signs the user out. The in-memory state is cleared even if the
// database write fails, so IsActive reports false afterwards.
func (s *Store) Logout() {
	if err := s.Clear(); err != nil {
		log.Printf("SESSION_STORE: logout write failed: %v", err)
	}
}

// Clear removes the stored user and returns any database error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = nil
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", userKey); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoginURL returns the login route carrying returnTo as the returnUrl
// query parameter.
func LoginURL(returnTo string) string {
	params := url.Values{}
	if returnTo != "" {
		params.Set("returnUrl", returnTo)
	}
	return "/login?" + params.Encode()
}
