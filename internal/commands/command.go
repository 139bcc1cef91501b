// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"io"

	"taskman/internal/config"
	"taskman/internal/service"
)

// Prompter reads one line of user input after showing label.
// Any error (EOF, interrupt) means no more input will arrive.
type Prompter interface {
	Prompt(label string) (string, error)
}

// Command defines the interface for menu commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns the menu label.
	Synopsis() string

	// MenuNumber returns the command's position in the numbered menu.
	MenuNumber() int

	// Run executes the command.
	// cfg is always provided (paths, color).
	// in supplies any further input the command asks for.
	// Returns an exit code; exitcode.Quit ends the menu loop.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out, errOut io.Writer) int
}
