// Package jsonfile persists the task collection as a JSON array on disk.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"taskman/internal/logging"
	"taskman/internal/service"
)

const (
	// FileMode is the permission of the task and sidecar files.
	FileMode os.FileMode = 0600

	// DirMode is the permission used when creating the parent directory.
	DirMode os.FileMode = 0700

	metaSuffix = ".meta.json"
)

// metaFile is the sidecar holding the ID high-water mark.
type metaFile struct {
	NextID int `json:"next_id"`
}

// FileStore loads and saves snapshots from a JSON file.
type FileStore struct {
	path   string
	logger *slog.Logger
	now    func() time.Time
}

// New creates a FileStore backed by path.
func New(path string, logger *slog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logging.OrNop(logger).With("component", "jsonfile"),
		now:    time.Now,
	}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// MetaPath returns the sidecar path: tasks.json -> tasks.meta.json.
func (s *FileStore) MetaPath() string {
	return strings.TrimSuffix(s.path, filepath.Ext(s.path)) + metaSuffix
}

// Load reads the backing file.
// A missing or blank file yields an empty snapshot. A file that cannot be
// decoded, or that breaks the ID/description invariants, yields
// service.ErrCorruptData.
func (s *FileStore) Load(ctx context.Context) (service.Snapshot, error) {
	snap := service.Snapshot{}

	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.logger.Debug("no task file, starting empty", "path", s.path)
	case err != nil:
		return service.Snapshot{}, fmt.Errorf("read %s: %w", s.path, err)
	case len(bytes.TrimSpace(data)) == 0:
		s.logger.Debug("blank task file, starting empty", "path", s.path)
	case !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")):
		return service.Snapshot{}, fmt.Errorf("%w: %s: not a JSON array", service.ErrCorruptData, s.path)
	default:
		if err := json.Unmarshal(data, &snap.Tasks); err != nil {
			return service.Snapshot{}, fmt.Errorf("%w: %s: %v", service.ErrCorruptData, s.path, err)
		}
		if err := validate(snap.Tasks); err != nil {
			return service.Snapshot{}, fmt.Errorf("%w: %s: %v", service.ErrCorruptData, s.path, err)
		}
	}

	next := 1
	for _, t := range snap.Tasks {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	if mark := s.readNextID(); mark > next {
		next = mark
	}
	snap.NextID = next

	s.logger.Debug("loaded tasks", "path", s.path, "count", len(snap.Tasks), "next_id", next)
	return snap, nil
}

// Save replaces the backing file with snap, then records the ID high-water
// mark in the sidecar. Each file is written to a temp file and renamed into
// place, so a crash leaves either the old or the new content.
// An error means the backing file was not replaced. A failed sidecar write
// is only logged, since Load falls back to the highest stored ID.
func (s *FileStore) Save(ctx context.Context, snap service.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tasks := snap.Tasks
	if tasks == nil {
		tasks = []service.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := writeFileAtomic(s.path, append(data, '\n')); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}

	meta, err := json.Marshal(metaFile{NextID: snap.NextID})
	if err == nil {
		err = writeFileAtomic(s.MetaPath(), append(meta, '\n'))
	}
	if err != nil {
		s.logger.Warn("could not record next task ID", "path", s.MetaPath(), "error", err)
	}

	s.logger.Debug("saved tasks", "path", s.path, "count", len(tasks), "next_id", snap.NextID)
	return nil
}

// Quarantine moves the backing file aside so a fresh collection can be
// started without overwriting it. Returns the new path.
func (s *FileStore) Quarantine() (string, error) {
	dest := fmt.Sprintf("%s.corrupt-%s", s.path, s.now().UTC().Format("20060102T150405Z"))
	if err := os.Rename(s.path, dest); err != nil {
		return "", fmt.Errorf("quarantine %s: %w", s.path, err)
	}
	s.logger.Warn("moved corrupt task file aside", "path", s.path, "dest", dest)
	return dest, nil
}

// readNextID returns the sidecar high-water mark, or 0 if it is unusable.
func (s *FileStore) readNextID() int {
	data, err := os.ReadFile(s.MetaPath())
	if errors.Is(err, os.ErrNotExist) {
		return 0
	}
	if err != nil {
		s.logger.Warn("cannot read meta file", "path", s.MetaPath(), "error", err)
		return 0
	}
	var meta metaFile
	if err := json.Unmarshal(data, &meta); err != nil {
		s.logger.Warn("ignoring malformed meta file", "path", s.MetaPath(), "error", err)
		return 0
	}
	return meta.NextID
}

func validate(tasks []service.Task) error {
	seen := make(map[int]bool, len(tasks))
	for i, t := range tasks {
		if t.ID <= 0 {
			return fmt.Errorf("entry %d: invalid id %d", i, t.ID)
		}
		if seen[t.ID] {
			return fmt.Errorf("entry %d: duplicate id %d", i, t.ID)
		}
		seen[t.ID] = true
		if strings.TrimSpace(t.Description) == "" {
			return fmt.Errorf("entry %d: empty description", i)
		}
	}
	return nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return fmt.Errorf("ensure directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Chmod(FileMode); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return err
	}

	// Persist the rename itself. Not supported everywhere, so best effort.
	if d, derr := os.Open(dir); derr == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}
