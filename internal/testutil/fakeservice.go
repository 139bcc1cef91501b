// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"

	"taskman/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	tasks  []service.Task
	nextID int

	// Error injection for testing
	AddErr            error
	ListErr           error
	CompleteErr       error
	DeleteErr         error
	ClearCompletedErr error
	EditErr           error
	StatsErr          error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// AddTask seeds a task and returns its ID.
func (f *FakeService) AddTask(description string, completed bool) int {
	id := f.nextID
	f.nextID++
	f.tasks = append(f.tasks, service.Task{ID: id, Description: description, Completed: completed})
	return id
}

// Tasks returns a copy of the current tasks.
func (f *FakeService) Tasks() []service.Task {
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// Add implements service.Service.
func (f *FakeService) Add(ctx context.Context, description string) (service.Task, error) {
	if f.AddErr != nil {
		return service.Task{}, f.AddErr
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return service.Task{}, service.ErrValidation
	}
	f.AddTask(description, false)
	return f.tasks[len(f.tasks)-1], nil
}

// List implements service.Service.
func (f *FakeService) List(ctx context.Context) ([]service.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Tasks(), nil
}

// Complete implements service.Service.
func (f *FakeService) Complete(ctx context.Context, id int) (bool, error) {
	if f.CompleteErr != nil {
		return false, f.CompleteErr
	}
	i := f.index(id)
	if i < 0 {
		return false, fmt.Errorf("%w: %d", service.ErrNotFound, id)
	}
	if f.tasks[i].Completed {
		return false, nil
	}
	f.tasks[i].Completed = true
	return true, nil
}

// Delete implements service.Service.
func (f *FakeService) Delete(ctx context.Context, id int) (service.Task, error) {
	if f.DeleteErr != nil {
		return service.Task{}, f.DeleteErr
	}
	i := f.index(id)
	if i < 0 {
		return service.Task{}, fmt.Errorf("%w: %d", service.ErrNotFound, id)
	}
	removed := f.tasks[i]
	f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
	return removed, nil
}

// ClearCompleted implements service.Service.
func (f *FakeService) ClearCompleted(ctx context.Context) (int, error) {
	if f.ClearCompletedErr != nil {
		return 0, f.ClearCompletedErr
	}
	var kept []service.Task
	for _, t := range f.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(f.tasks) - len(kept)
	f.tasks = kept
	return removed, nil
}

// Edit implements service.Service.
func (f *FakeService) Edit(ctx context.Context, id int, description string) (string, error) {
	if f.EditErr != nil {
		return "", f.EditErr
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return "", service.ErrValidation
	}
	i := f.index(id)
	if i < 0 {
		return "", fmt.Errorf("%w: %d", service.ErrNotFound, id)
	}
	old := f.tasks[i].Description
	f.tasks[i].Description = description
	return old, nil
}

// Stats implements service.Service.
func (f *FakeService) Stats(ctx context.Context) (service.Stats, error) {
	if f.StatsErr != nil {
		return service.Stats{}, f.StatsErr
	}
	st := service.Stats{Total: len(f.tasks)}
	for _, t := range f.tasks {
		if t.Completed {
			st.Completed++
		}
	}
	st.Pending = st.Total - st.Completed
	return st, nil
}

func (f *FakeService) index(id int) int {
	for i, t := range f.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
