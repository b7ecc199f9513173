// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/idleguard/internal/config"
	"github.com/jeranaias/idleguard/internal/ui/styles"
)

// Run starts the terminal host and blocks until the user quits or ctx is
// done. The idle guard is mounted for exactly the lifetime of the program.
func Run(ctx context.Context, cfg *config.Config, sessions Sessions, logger *log.Logger) error {
	var program *tea.Program
	ready := make(chan struct{})
	post := func(msg tea.Msg) {
		<-ready
		program.Send(msg)
	}

	model, err := New(Options{
		Sessions: sessions,
		Post:     post,
		Logger:   logger,
		Theme:    styles.NewTheme(cfg.UI.NoColor),
		NoColor:  cfg.UI.NoColor,
	})
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	program = tea.NewProgram(model, opts...)
	close(ready)

	model.Mount()
	defer model.Unmount()

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal host: %w", err)
	}
	return nil
}
