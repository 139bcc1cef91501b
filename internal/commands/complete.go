package commands

import (
	"context"
	"io"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/service"
)

func init() {
	Register(&CompleteCmd{})
}

// CompleteCmd implements the complete command.
type CompleteCmd struct{}

func (c *CompleteCmd) Name() string      { return "complete" }
func (c *CompleteCmd) Aliases() []string { return []string{"done"} }
func (c *CompleteCmd) Synopsis() string  { return "Complete a task" }
func (c *CompleteCmd) MenuNumber() int   { return 3 }

func (c *CompleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out, errOut io.Writer) int {
	p := newPrinter(cfg, out)

	empty, code := showTasks(ctx, svc, p, errOut)
	if empty || code != exitcode.Success {
		return code
	}

	id, code := askTaskID(in, "Enter task ID to complete: ", errOut)
	if code != exitcode.Success {
		return code
	}

	changed, err := svc.Complete(ctx, id)
	if err != nil {
		return reportError(errOut, err, id)
	}
	if !changed {
		p.Info("Task [%d] is already completed!", id)
		return exitcode.Success
	}

	p.Success("Task [%d] marked as completed!", id)
	return exitcode.Success
}
