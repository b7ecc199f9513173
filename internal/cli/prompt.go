// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/idleguard/internal/session"
)

// ErrLoginAborted is returned when the user cancels a login prompt.
var ErrLoginAborted = errors.New("login aborted")

// prompter reads one line of input after printing a prompt.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// promptMissing asks for a name or email that was not given as a flag.
// Without a terminal the user is left as is and validation reports what
// is missing.
func promptMissing(u *session.User) error {
	if !needsPrompt(*u) || !IsTTY() {
		return nil
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	return fillUser(line, u)
}

func needsPrompt(u session.User) bool {
	return strings.TrimSpace(u.Name) == "" || strings.TrimSpace(u.Email) == ""
}

// fillUser prompts for each empty required field in turn.
func fillUser(p prompter, u *session.User) error {
	fields := []struct {
		label string
		dst   *string
	}{
		{"Name: ", &u.Name},
		{"Email: ", &u.Email},
	}
	for _, f := range fields {
		if strings.TrimSpace(*f.dst) != "" {
			continue
		}
		v, err := p.Prompt(f.label)
		if errors.Is(err, liner.ErrPromptAborted) {
			return ErrLoginAborted
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", strings.TrimSuffix(f.label, ": "), err)
		}
		*f.dst = strings.TrimSpace(v)
	}
	return nil
}
