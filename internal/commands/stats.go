package commands

import (
	"context"
	"io"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/service"
)

func init() {
	Register(&StatsCmd{})
}

// StatsCmd implements the stats command.
type StatsCmd struct{}

func (c *StatsCmd) Name() string      { return "stats" }
func (c *StatsCmd) Aliases() []string { return []string{"statistics"} }
func (c *StatsCmd) Synopsis() string  { return "View statistics" }
func (c *StatsCmd) MenuNumber() int   { return 7 }

func (c *StatsCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out, errOut io.Writer) int {
	st, err := svc.Stats(ctx)
	if err != nil {
		return reportError(errOut, err, 0)
	}

	p := newPrinter(cfg, out)
	if st.Total == 0 {
		p.Info("\nNo tasks to display statistics for.")
		return exitcode.Success
	}
	p.Stats(st)
	return exitcode.Success
}
