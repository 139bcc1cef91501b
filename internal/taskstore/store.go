// Package taskstore implements service.Service as an ordered in-memory
// collection that is persisted after every mutation.
package taskstore

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"taskman/internal/logging"
	"taskman/internal/service"
)

// Persister loads and saves the full collection.
type Persister interface {
	Load(ctx context.Context) (service.Snapshot, error)
	Save(ctx context.Context, snap service.Snapshot) error
}

// Store is the task collection. It is not safe for concurrent use.
type Store struct {
	tasks     []service.Task
	nextID    int
	persister Persister
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open loads the collection through p.
func Open(ctx context.Context, p Persister, opts ...Option) (*Store, error) {
	s := &Store{
		persister: p,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.OrNop(s.logger).With("component", "taskstore")

	snap, err := p.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.tasks = snap.Tasks
	s.nextID = snap.NextID
	for _, t := range s.tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	if s.nextID < 1 {
		s.nextID = 1
	}
	return s, nil
}

// Add implements service.Service.
func (s *Store) Add(ctx context.Context, description string) (service.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return service.Task{}, service.ErrValidation
	}

	task := service.Task{
		ID:          s.nextID,
		Description: description,
		CreatedAt:   service.NewTimestamp(s.now()),
	}
	err := s.mutate(ctx, func() {
		s.tasks = append(s.tasks, task)
		s.nextID++
	})
	if err != nil {
		return service.Task{}, err
	}

	s.logger.Debug("task added", "id", task.ID)
	return task, nil
}

// List implements service.Service.
func (s *Store) List(ctx context.Context) ([]service.Task, error) {
	return slices.Clone(s.tasks), nil
}

// Complete implements service.Service.
func (s *Store) Complete(ctx context.Context, id int) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, notFound(id)
	}
	if s.tasks[i].Completed {
		return false, nil
	}

	if err := s.mutate(ctx, func() { s.tasks[i].Completed = true }); err != nil {
		return false, err
	}
	s.logger.Debug("task completed", "id", id)
	return true, nil
}

// Delete implements service.Service.
func (s *Store) Delete(ctx context.Context, id int) (service.Task, error) {
	i := s.index(id)
	if i < 0 {
		return service.Task{}, notFound(id)
	}

	removed := s.tasks[i]
	if err := s.mutate(ctx, func() { s.tasks = slices.Delete(s.tasks, i, i+1) }); err != nil {
		return service.Task{}, err
	}
	s.logger.Debug("task deleted", "id", id)
	return removed, nil
}

// ClearCompleted implements service.Service.
func (s *Store) ClearCompleted(ctx context.Context) (int, error) {
	n := 0
	for _, t := range s.tasks {
		if t.Completed {
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}

	err := s.mutate(ctx, func() {
		s.tasks = slices.DeleteFunc(s.tasks, func(t service.Task) bool { return t.Completed })
	})
	if err != nil {
		return 0, err
	}
	s.logger.Debug("completed tasks cleared", "count", n)
	return n, nil
}

// Edit implements service.Service.
func (s *Store) Edit(ctx context.Context, id int, description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", service.ErrValidation
	}
	i := s.index(id)
	if i < 0 {
		return "", notFound(id)
	}

	old := s.tasks[i].Description
	if err := s.mutate(ctx, func() { s.tasks[i].Description = description }); err != nil {
		return "", err
	}
	s.logger.Debug("task edited", "id", id)
	return old, nil
}

// Stats implements service.Service.
func (s *Store) Stats(ctx context.Context) (service.Stats, error) {
	st := service.Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		}
	}
	st.Pending = st.Total - st.Completed
	return st, nil
}

// mutate applies fn and persists the result. On a failed save the
// collection is restored to its state before fn.
func (s *Store) mutate(ctx context.Context, fn func()) error {
	prevTasks := slices.Clone(s.tasks)
	prevNext := s.nextID

	fn()

	snap := service.Snapshot{Tasks: slices.Clone(s.tasks), NextID: s.nextID}
	if err := s.persister.Save(ctx, snap); err != nil {
		s.tasks = prevTasks
		s.nextID = prevNext
		s.logger.Debug("save failed, rolled back", "error", err)
		return fmt.Errorf("%w: %w", service.ErrStorage, err)
	}
	return nil
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.tasks, func(t service.Task) bool { return t.ID == id })
}

func notFound(id int) error {
	return fmt.Errorf("%w: %d", service.ErrNotFound, id)
}
