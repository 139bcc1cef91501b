// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task operations.
// Commands never touch the backing file directly.
type Service interface {
	// Add creates a task with the next unused ID and returns it.
	// Returns ErrValidation if the description is empty.
	Add(ctx context.Context, description string) (Task, error)

	// List returns all tasks in insertion order.
	List(ctx context.Context) ([]Task, error)

	// Complete marks a task as completed.
	// changed is false if the task was already completed.
	Complete(ctx context.Context, id int) (changed bool, err error)

	// Delete removes a task and returns it.
	Delete(ctx context.Context, id int) (Task, error)

	// ClearCompleted removes all completed tasks and returns how many were removed.
	ClearCompleted(ctx context.Context) (int, error)

	// Edit replaces a task description and returns the previous one.
	Edit(ctx context.Context, id int, description string) (string, error)

	// Stats returns counts over the current collection.
	Stats(ctx context.Context) (Stats, error)
}
