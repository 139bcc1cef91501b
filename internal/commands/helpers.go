package commands

import (
	"context"
	"errors"
	"io"
	"strings"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/output"
	"taskman/internal/service"
)

const emptyListMessage = "No tasks found. Add some tasks to get started!"

func newPrinter(cfg *config.Config, out io.Writer) *output.Printer {
	return output.NewPrinter(out, cfg != nil && cfg.Color)
}

// ask prompts for one line. ok is false once input is exhausted.
func ask(in Prompter, label string) (answer string, ok bool) {
	answer, err := in.Prompt(label)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(answer), true
}

// confirm asks a y/n question; only "y" or "yes" count as yes.
func confirm(in Prompter, question string) (yes, ok bool) {
	answer, ok := ask(in, question+" (y/n): ")
	if !ok {
		return false, false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", true
}

// askTaskID prompts for an ID and reports bad input.
// code is exitcode.Success only when id is valid.
func askTaskID(in Prompter, label string, errOut io.Writer) (id int, code int) {
	answer, ok := ask(in, label)
	if !ok {
		return 0, exitcode.Quit
	}
	id, err := ParseTaskID(answer)
	if err != nil {
		output.Error(errOut, "%v", err)
		return 0, exitcode.UserError
	}
	return id, exitcode.Success
}

// showTasks prints the task list, or the empty-list message.
// empty is true when there is nothing to act on.
func showTasks(ctx context.Context, svc service.Service, p *output.Printer, errOut io.Writer) (empty bool, code int) {
	tasks, err := svc.List(ctx)
	if err != nil {
		return true, reportError(errOut, err, 0)
	}
	if len(tasks) == 0 {
		p.Info("\n%s", emptyListMessage)
		return true, exitcode.Success
	}
	p.Tasks(tasks)
	return false, exitcode.Success
}

// reportError prints err in the CLI's error format and maps it to an exit code.
// Validation and lookup errors are recoverable; anything else is a storage failure.
func reportError(errOut io.Writer, err error, id int) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		output.Error(errOut, "task description cannot be empty")
		return exitcode.UserError
	case errors.Is(err, service.ErrNotFound):
		output.Error(errOut, "task [%d] not found", id)
		return exitcode.UserError
	case errors.Is(err, service.ErrStorage):
		output.Error(errOut, "%v", err)
		return exitcode.StorageError
	default:
		output.Error(errOut, "storage error: %v", err)
		return exitcode.StorageError
	}
}
