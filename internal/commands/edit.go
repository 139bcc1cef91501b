package commands

import (
	"context"
	"io"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task" }
func (c *EditCmd) MenuNumber() int   { return 6 }

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out, errOut io.Writer) int {
	p := newPrinter(cfg, out)

	empty, code := showTasks(ctx, svc, p, errOut)
	if empty || code != exitcode.Success {
		return code
	}

	id, code := askTaskID(in, "Enter task ID to edit: ", errOut)
	if code != exitcode.Success {
		return code
	}

	description, ok := ask(in, "Enter new task description: ")
	if !ok {
		return exitcode.Quit
	}

	old, err := svc.Edit(ctx, id, description)
	if err != nil {
		return reportError(errOut, err, id)
	}

	p.Success("Task [%d] updated:", id)
	p.Info("  Old: %s", old)
	p.Info("  New: %s", description)
	return exitcode.Success
}
