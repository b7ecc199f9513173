// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jeranaias/idleguard/internal/config"
	"github.com/jeranaias/idleguard/internal/ui/app"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	if !IsTTY() || !IsStdoutTTY() {
		return ErrNotTerminal
	}

	store, cfg, err := opts.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	logger, closer, err := openAuditLog(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, cfg, store, logger)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openAuditLog opens the append-only audit log. It returns a nil logger when
// auditing is disabled; the screen belongs to the UI so nothing goes to stderr.
func openAuditLog(cfg *config.Config) (*log.Logger, io.Closer, error) {
	if !cfg.Audit.Enabled {
		return nil, nopCloser{}, nil
	}

	path := cfg.AuditLogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create audit log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	return log.New(f, "", 0), f, nil
}
