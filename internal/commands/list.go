package commands

import (
	"context"
	"io"

	"taskman/internal/config"
	"taskman/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// An empty collection prints a hint instead of an empty table.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List all tasks" }
func (c *ListCmd) MenuNumber() int   { return 2 }

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out, errOut io.Writer) int {
	_, code := showTasks(ctx, svc, newPrinter(cfg, out), errOut)
	return code
}
