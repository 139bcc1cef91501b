package commands

import (
	"context"
	"io"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/service"
)

func init() {
	Register(&ClearCmd{})
}

// ClearCmd implements the clear-completed command.
type ClearCmd struct{}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return []string{"clear-completed"} }
func (c *ClearCmd) Synopsis() string  { return "Clear completed tasks" }
func (c *ClearCmd) MenuNumber() int   { return 5 }

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out, errOut io.Writer) int {
	p := newPrinter(cfg, out)

	yes, ok := confirm(in, "Are you sure you want to clear all completed tasks?")
	if !ok {
		return exitcode.Quit
	}
	if !yes {
		p.Info("Operation cancelled.")
		return exitcode.Success
	}

	removed, err := svc.ClearCompleted(ctx)
	if err != nil {
		return reportError(errOut, err, 0)
	}
	if removed == 0 {
		p.Info("No completed tasks to remove.")
		return exitcode.Success
	}

	p.Success("Removed %d completed task(s).", removed)
	return exitcode.Success
}
