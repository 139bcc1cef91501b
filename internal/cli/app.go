package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"taskman/internal/backend/jsonfile"
	"taskman/internal/commands"
	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/logging"
	"taskman/internal/output"
	"taskman/internal/service"
	"taskman/internal/taskstore"
)

// Run opens the task file named by cfg and runs the default menu over it.
// Returns the process exit code.
func Run(ctx context.Context, cfg *config.Config, in commands.Prompter, out, errOut io.Writer, logger *slog.Logger) int {
	logger = logging.OrNop(logger)

	store, err := OpenStore(ctx, cfg, out, logger)
	if err != nil {
		output.Error(errOut, "%v", err)
		return exitcode.StorageError
	}
	return NewMenu(commands.DefaultRegistry, cfg, store, logger).Run(ctx, in, out, errOut)
}

// OpenStore loads the task file named by cfg.
// A corrupt file is moved aside and an empty collection is started in its place.
func OpenStore(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger) (*taskstore.Store, error) {
	file := jsonfile.New(cfg.DataFile, logger)

	store, err := taskstore.Open(ctx, file, taskstore.WithLogger(logger))
	if !errors.Is(err, service.ErrCorruptData) {
		return store, err
	}

	dest, qerr := file.Quarantine()
	if qerr != nil {
		return nil, errors.Join(err, qerr)
	}
	p := output.NewPrinter(out, cfg.Color)
	p.Info("Warning: %v", err)
	p.Info("The unreadable file was moved to %s; starting with an empty task list.", dest)

	return taskstore.Open(ctx, file, taskstore.WithLogger(logger))
}
