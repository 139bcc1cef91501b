package jsonfile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskman/internal/logging"
	"taskman/internal/service"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tasks.json"), nil)
}

func writeRaw(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Tasks)
	assert.Equal(t, 1, snap.NextID)
}

func TestLoad_BlankFileIsEmpty(t *testing.T) {
	s := newTestStore(t)
	writeRaw(t, s.Path(), "  \n")

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Tasks)
}

func TestLoad_CreatedAtFormats(t *testing.T) {
	s := newTestStore(t)
	writeRaw(t, s.Path(), `[
  {"id": 1, "description": "Buy milk", "completed": true, "created_at": "2024-01-01 12:00:00"},
  {"id": 2, "description": "Walk dog", "completed": false, "created_at": "2024-01-02T08:30:00Z"},
  {"id": 3, "description": "Call Bob", "completed": false}
]`)

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Tasks, 3)

	want := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	assert.True(t, want.Equal(snap.Tasks[0].CreatedAt.Time), "got %v", snap.Tasks[0].CreatedAt)
	assert.True(t, time.Date(2024, 1, 2, 8, 30, 0, 0, time.UTC).Equal(snap.Tasks[1].CreatedAt.Time))
	assert.True(t, snap.Tasks[2].CreatedAt.IsZero())
	assert.Equal(t, 4, snap.NextID)
}

func TestSave_CreatedAtLayout(t *testing.T) {
	s := newTestStore(t)
	created := service.NewTimestamp(time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local))
	snap := service.Snapshot{
		Tasks:  []service.Task{{ID: 1, Description: "Buy milk", CreatedAt: created}},
		NextID: 2,
	}
	require.NoError(t, s.Save(context.Background(), snap))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"description":"Buy milk","completed":false,"created_at":"2024-01-01 12:00:00"}]`, string(data))
}

func TestLoad_CorruptData(t *testing.T) {
	cases := map[string]string{
		"invalid json":  `[{"id":1,"description":"a"`,
		"not an array":  `{"id":1,"description":"a"}`,
		"zero id":       `[{"id":0,"description":"a","completed":false}]`,
		"duplicate id":  `[{"id":1,"description":"a"},{"id":1,"description":"b"}]`,
		"empty text":    `[{"id":1,"description":"   "}]`,
		"wrong type":    `[{"id":"one","description":"a"}]`,
		"trailing junk": `[] []`,
		"null":          `null`,
		"bad timestamp": `[{"id":1,"description":"a","created_at":"yesterday"}]`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			s := newTestStore(t)
			writeRaw(t, s.Path(), content)

			_, err := s.Load(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, service.ErrCorruptData)
			assert.Contains(t, err.Error(), s.Path())
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	created := service.NewTimestamp(time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC))
	want := service.Snapshot{
		Tasks: []service.Task{
			{ID: 1, Description: "Buy milk", Completed: true, CreatedAt: created},
			{ID: 3, Description: "Write report", Completed: false, CreatedAt: created},
			{ID: 2, Description: "Call \"Bob\"\nabout it", Completed: false},
		},
		NextID: 7,
	}

	require.NoError(t, s.Save(context.Background(), want))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Tasks, len(want.Tasks))
	for i := range want.Tasks {
		assert.Equal(t, want.Tasks[i].ID, got.Tasks[i].ID)
		assert.Equal(t, want.Tasks[i].Description, got.Tasks[i].Description)
		assert.Equal(t, want.Tasks[i].Completed, got.Tasks[i].Completed)
		assert.True(t, want.Tasks[i].CreatedAt.Equal(got.Tasks[i].CreatedAt.Time))
	}
	assert.Equal(t, 7, got.NextID)
}

func TestSave_FileFormat(t *testing.T) {
	s := newTestStore(t)
	snap := service.Snapshot{
		Tasks:  []service.Task{{ID: 1, Description: "Buy milk"}},
		NextID: 2,
	}
	require.NoError(t, s.Save(context.Background(), snap))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"description":"Buy milk","completed":false}]`, string(data))

	meta, err := os.ReadFile(s.MetaPath())
	require.NoError(t, err)
	assert.JSONEq(t, `{"next_id":2}`, string(meta))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, FileMode, info.Mode().Perm())
}

func TestSave_EmptyWritesArray(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(context.Background(), service.Snapshot{NextID: 4}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.json")
	s := New(path, nil)

	require.NoError(t, s.Save(context.Background(), service.Snapshot{NextID: 1}))
	assert.FileExists(t, path)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)
	for i := 1; i <= 3; i++ {
		snap := service.Snapshot{Tasks: []service.Task{{ID: i, Description: "x"}}, NextID: i + 1}
		require.NoError(t, s.Save(context.Background(), snap))
	}

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"tasks.json", "tasks.meta.json"}, names)
}

func TestSave_RenameFailureCleansUp(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "tasks.json")
	require.NoError(t, os.Mkdir(target, 0700))
	writeRaw(t, filepath.Join(target, "keep"), "x")

	s := New(target, nil)
	err := s.Save(context.Background(), service.Snapshot{NextID: 1})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tasks.json", entries[0].Name())
	assert.FileExists(t, filepath.Join(target, "keep"))
}

func TestSave_SidecarFailureKeepsTasks(t *testing.T) {
	var logs bytes.Buffer
	s := New(filepath.Join(t.TempDir(), "tasks.json"), logging.New(&logs, false))
	require.NoError(t, os.Mkdir(s.MetaPath(), 0700))
	writeRaw(t, filepath.Join(s.MetaPath(), "keep"), "x")

	snap := service.Snapshot{Tasks: []service.Task{{ID: 4, Description: "d"}}, NextID: 9}
	require.NoError(t, s.Save(context.Background(), snap))
	assert.Contains(t, logs.String(), "could not record next task ID")

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, 5, got.NextID)
}

func TestLoad_HighWaterMarkFromSidecar(t *testing.T) {
	s := newTestStore(t)
	writeRaw(t, s.Path(), `[{"id":2,"description":"b"}]`)
	writeRaw(t, s.MetaPath(), `{"next_id":10}`)

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, snap.NextID)
}

func TestLoad_SidecarNeverLowersNextID(t *testing.T) {
	s := newTestStore(t)
	writeRaw(t, s.Path(), `[{"id":5,"description":"e"}]`)
	writeRaw(t, s.MetaPath(), `{"next_id":2}`)

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, snap.NextID)
}

func TestLoad_MalformedSidecarIsIgnored(t *testing.T) {
	s := newTestStore(t)
	writeRaw(t, s.Path(), `[{"id":3,"description":"c"}]`)
	writeRaw(t, s.MetaPath(), `not json`)

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, snap.NextID)
}

func TestQuarantine(t *testing.T) {
	s := newTestStore(t)
	s.now = func() time.Time { return time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC) }
	writeRaw(t, s.Path(), `{broken`)

	dest, err := s.Quarantine()
	require.NoError(t, err)
	assert.Equal(t, s.Path()+".corrupt-20261016T080000Z", dest)
	assert.NoFileExists(t, s.Path())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, `{broken`, string(data))

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Tasks)
}

func TestMetaPath(t *testing.T) {
	assert.Equal(t, "/data/tasks.meta.json", New("/data/tasks.json", nil).MetaPath())
	assert.Equal(t, "/data/todo.meta.json", New("/data/todo", nil).MetaPath())
}
