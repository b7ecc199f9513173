// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeranaias/idleguard/internal/idle"
	"github.com/jeranaias/idleguard/internal/session"
	"github.com/jeranaias/idleguard/internal/ui/styles"
)

// =============================================================================
// LOGIN
// =============================================================================

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var u session.User

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in without starting the UI",
		Long: "Sign in without starting the UI. On a terminal, a missing --name or\n" +
			"--email is asked for interactively.",
		Example: "  idleguard login --name \"Ada Lovelace\" --email ada@example.com\n" +
			"  idleguard login --name Ada --email ada@example.com --phone 555-0100",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := promptMissing(&u); err != nil {
				return err
			}

			store, _, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Login(u); err != nil {
				return err
			}
			cur, err := store.CurrentUser()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Signed in as %s <%s>\n", styles.StatusIndicators.Success, cur.Name, cur.Email)
			fmt.Fprintf(out, "Session: %s\n", cur.SessionID)
			return nil
		},
	}
	cmd.Flags().StringVar(&u.Name, "name", "", "display name (prompted if omitted)")
	cmd.Flags().StringVar(&u.Email, "email", "", "email address (prompted if omitted)")
	cmd.Flags().StringVar(&u.Phone, "phone", "", "phone number")
	return cmd
}

// =============================================================================
// LOGOUT
// =============================================================================

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if !store.IsActive() {
				fmt.Fprintln(out, "Not signed in.")
				return nil
			}
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s Signed out\n", styles.StatusIndicators.Success)
			return nil
		},
	}
}

// =============================================================================
// STATUS
// =============================================================================

// statusData is the --json payload of the status command.
type statusData struct {
	SignedIn  bool          `json:"signedIn"`
	User      *session.User `json:"user,omitempty"`
	IdleLimit string        `json:"idleLimit"`
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"s"},
		Short:   "Show the signed-in user",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			data := statusData{IdleLimit: idle.InactivityLimit.String()}
			if u, err := store.CurrentUser(); err == nil {
				data.SignedIn = true
				data.User = &u
			}

			if jsonOut {
				return NewJSONResponse("status", data).Print(cmd.OutOrStdout())
			}
			theme := styles.NewTheme(cfg.UI.NoColor || !IsStdoutTTY())
			printStatus(cmd.OutOrStdout(), theme, data)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	return cmd
}

func printStatus(w io.Writer, t *styles.Theme, data statusData) {
	row := func(label, value string) {
		fmt.Fprintf(w, "  %s %s\n", t.Label.Render(fmt.Sprintf("%-11s", label+":")), t.Value.Render(value))
	}

	fmt.Fprintln(w, t.Title.Render("idleguard status"))
	if !data.SignedIn {
		row("Session", "not signed in")
		row("Idle limit", data.IdleLimit)
		return
	}

	u := data.User
	row("Name", u.Name)
	row("Email", u.Email)
	if u.Phone != "" {
		row("Phone", u.Phone)
	}
	row("Signed in", u.LoginTime.Local().Format(time.RFC1123))
	row("Session", u.SessionID)
	row("Idle limit", data.IdleLimit)
}
