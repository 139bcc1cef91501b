package service

import "errors"

var (
	// ErrValidation is returned when a description is empty or whitespace-only.
	ErrValidation = errors.New("task description cannot be empty")

	// ErrNotFound is returned when no task has the requested ID.
	ErrNotFound = errors.New("task not found")

	// ErrCorruptData is returned when the backing file exists but cannot be parsed.
	ErrCorruptData = errors.New("corrupt task data")

	// ErrStorage is returned when the backing file cannot be written.
	ErrStorage = errors.New("storage error")
)
