// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a recoverable user error (empty description,
	// unknown ID, bad input). The menu reports it and keeps running.
	UserError = 1

	// StorageError indicates the backing file could not be written or the
	// configuration could not be loaded. The program aborts with this code.
	StorageError = 2

	// Quit is returned by commands to end the menu loop. It is never used as
	// a process exit code.
	Quit = -1
)
