package commands

import (
	"context"
	"io"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a new task" }
func (c *AddCmd) MenuNumber() int   { return 1 }

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out, errOut io.Writer) int {
	description, ok := ask(in, "Enter task description: ")
	if !ok {
		return exitcode.Quit
	}

	task, err := svc.Add(ctx, description)
	if err != nil {
		return reportError(errOut, err, 0)
	}

	newPrinter(cfg, out).Success("Task added: [%d] %s", task.ID, task.Description)
	return exitcode.Success
}
