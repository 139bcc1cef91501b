package commands

import (
	"context"
	"fmt"
	"io"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/service"
)

func init() {
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string      { return "delete" }
func (c *DeleteCmd) Aliases() []string { return []string{"rm"} }
func (c *DeleteCmd) Synopsis() string  { return "Delete a task" }
func (c *DeleteCmd) MenuNumber() int   { return 4 }

func (c *DeleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out, errOut io.Writer) int {
	p := newPrinter(cfg, out)

	empty, code := showTasks(ctx, svc, p, errOut)
	if empty || code != exitcode.Success {
		return code
	}

	id, code := askTaskID(in, "Enter task ID to delete: ", errOut)
	if code != exitcode.Success {
		return code
	}

	yes, ok := confirm(in, fmt.Sprintf("Are you sure you want to delete task [%d]?", id))
	if !ok {
		return exitcode.Quit
	}
	if !yes {
		p.Info("Deletion cancelled.")
		return exitcode.Success
	}

	removed, err := svc.Delete(ctx, id)
	if err != nil {
		return reportError(errOut, err, id)
	}

	p.Success("Task [%d] deleted: %s", removed.ID, removed.Description)
	return exitcode.Success
}
