// Package cli runs the interactive menu loop.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"taskman/internal/commands"
	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/logging"
	"taskman/internal/output"
	"taskman/internal/service"
)

// Version is the application version, set at build time via -ldflags.
var Version = "dev"

const (
	title   = "TASK MANAGER"
	goodbye = "Thank you for using Task Manager! Goodbye!"
	aborted = "Exiting Task Manager. Goodbye!"
)

// Menu shows the numbered menu and dispatches choices to commands.
type Menu struct {
	registry *commands.Registry
	cfg      *config.Config
	svc      service.Service
	logger   *slog.Logger
}

// NewMenu creates a menu over the given registry and service.
func NewMenu(registry *commands.Registry, cfg *config.Config, svc service.Service, logger *slog.Logger) *Menu {
	return &Menu{
		registry: registry,
		cfg:      cfg,
		svc:      svc,
		logger:   logging.OrNop(logger),
	}
}

// Run loops until the user exits, input ends or a storage error occurs.
// Returns the process exit code.
func (m *Menu) Run(ctx context.Context, in commands.Prompter, out, errOut io.Writer) int {
	p := output.NewPrinter(out, m.cfg.Color)
	entries := m.registry.Menu()
	prompt := fmt.Sprintf("\nEnter your choice (1-%d): ", len(entries))

	p.Header(fmt.Sprintf("Welcome to Task Manager! (%s)", Version))

	for {
		if ctx.Err() != nil {
			p.Info("\n%s", aborted)
			return exitcode.Success
		}

		m.printMenu(p, entries)

		choice, err := in.Prompt(prompt)
		if err != nil {
			m.logger.Debug("input ended", "error", err)
			p.Info("\n%s", aborted)
			return exitcode.Success
		}
		choice = strings.ToLower(strings.TrimSpace(choice))

		cmd, ok := m.registry.Find(choice)
		if !ok {
			p.Info("Invalid choice. Please enter a number between 1 and %d.", len(entries))
			continue
		}

		code := cmd.Run(ctx, m.cfg, m.svc, in, out, errOut)
		m.logger.Debug("command finished", "command", cmd.Name(), "code", code)

		switch code {
		case exitcode.Quit:
			if cmd.Name() == "exit" {
				p.Info("\n%s", goodbye)
			} else {
				p.Info("\n%s", aborted)
			}
			return exitcode.Success
		case exitcode.StorageError:
			m.logger.Error("aborting after storage failure", "command", cmd.Name())
			return exitcode.StorageError
		}
	}
}

func (m *Menu) printMenu(p *output.Printer, entries []commands.Command) {
	p.Header(title)
	for _, cmd := range entries {
		p.Info("%d. %s", cmd.MenuNumber(), cmd.Synopsis())
	}
	p.Rule()
}
