// Package main is the entry point for the taskman CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/term"

	"taskman/internal/cli"
	"taskman/internal/commands"
	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/logging"
	"taskman/internal/output"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(config.DefaultConfigDir())
	if err != nil {
		output.Error(os.Stderr, "%v", err)
		return exitcode.StorageError
	}
	cfg.Color = cfg.Color && !color.NoColor

	logger := logging.New(os.Stderr, cfg.Debug)
	logger.Debug("config loaded", "dir", cfg.Dir, "data_file", cfg.DataFile)

	in, closeInput := openPrompter(cfg, logger)
	defer closeInput()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Saves are atomic, so a signal exits as soon as the terminal is restored.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go exitOnSignal(sigChan, cancel, closeInput, os.Stdout, os.Exit)

	return cli.Run(ctx, cfg, in, os.Stdout, os.Stderr, logger)
}

// openPrompter uses the line editor when stdin is a terminal.
// The returned close func restores the terminal and is safe to call twice.
func openPrompter(cfg *config.Config, logger *slog.Logger) (commands.Prompter, func()) {
	plain := cli.NewLinePrompter(os.Stdin, os.Stdout)
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return plain, func() {}
	}

	if cfg.History {
		if err := cfg.EnsureDir(); err != nil {
			logger.Warn("history disabled", "error", err)
			cfg.History = false
		}
	}
	rl, err := cli.NewReadlinePrompter(cfg.HistoryPath())
	if err != nil {
		logger.Warn("line editing disabled", "error", err)
		return plain, func() {}
	}
	return rl, func() { _ = rl.Close() }
}

// exitOnSignal waits for one signal, restores the terminal and exits.
func exitOnSignal(sigs <-chan os.Signal, cancel context.CancelFunc, closeInput func(), out io.Writer, exit func(int)) {
	<-sigs
	cancel()
	closeInput()
	fmt.Fprintln(out, "\n\nExiting Task Manager. Goodbye!")
	exit(exitcode.Success)
}
