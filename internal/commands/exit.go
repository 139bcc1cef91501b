package commands

import (
	"context"
	"io"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/service"
)

func init() {
	Register(&ExitCmd{})
}

// ExitCmd ends the menu loop.
type ExitCmd struct{}

func (c *ExitCmd) Name() string      { return "exit" }
func (c *ExitCmd) Aliases() []string { return []string{"quit", "q"} }
func (c *ExitCmd) Synopsis() string  { return "Exit" }
func (c *ExitCmd) MenuNumber() int   { return 8 }

func (c *ExitCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out, errOut io.Writer) int {
	return exitcode.Quit
}
