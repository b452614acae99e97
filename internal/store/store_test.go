package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Petemir/2do-txt/internal/service"
	"github.com/Petemir/2do-txt/internal/settings"
	"github.com/Petemir/2do-txt/internal/store"
)

func newStore(t *testing.T) (*store.FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	s := store.New(settings.NewFile(filepath.Join(dir, "config", "settings.yaml")))
	s.SetClock(func() time.Time { return time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local) })
	return s, dir
}

func TestSaveFile_AndActivate(t *testing.T) {
	ctx := context.Background()
	s, dir := newStore(t)
	path := filepath.Join(dir, "lists", "todo.txt")

	require.NoError(t, s.SaveFile(ctx, path, "Buy milk\n"))
	require.NoError(t, s.AddFilePath(ctx, path))
	require.NoError(t, s.AddFilePath(ctx, path))
	require.NoError(t, s.SetActiveList(ctx, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk\n", string(data))

	paths, err := s.FilePaths(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, paths)

	active, err := s.ActiveList(ctx)
	require.NoError(t, err)
	assert.Equal(t, path, active)
}

func TestSaveFile_Replaces(t *testing.T) {
	ctx := context.Background()
	s, dir := newStore(t)
	path := filepath.Join(dir, "todo.txt")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0644))

	require.NoError(t, s.SaveFile(ctx, path, ""))

	content, err := s.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "", content)
}

func TestActiveList_None(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.ActiveList(context.Background())
	assert.ErrorIs(t, err, service.ErrNoActiveList)
}

func TestCloseFile(t *testing.T) {
	ctx := context.Background()
	s, dir := newStore(t)
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, s.AddFilePath(ctx, a))
	require.NoError(t, s.AddFilePath(ctx, b))
	require.NoError(t, s.SetActiveList(ctx, b))

	require.NoError(t, s.CloseFile(ctx, b))
	active, err := s.ActiveList(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, active)

	require.NoError(t, s.CloseFile(ctx, a))
	_, err = s.ActiveList(ctx)
	assert.ErrorIs(t, err, service.ErrNoActiveList)

	err = s.CloseFile(ctx, a)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestTaskOperations(t *testing.T) {
	ctx := context.Background()
	s, dir := newStore(t)
	path := filepath.Join(dir, "todo.txt")
	require.NoError(t, s.SaveFile(ctx, path, "(A) Call mom\nx 2024-01-01 Old\n\n2024-03-01 Pay rent\n"))

	tasks, err := s.OpenTasks(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []service.Task{
		{Line: 1, Raw: "(A) Call mom"},
		{Line: 4, Raw: "2024-03-01 Pay rent"},
	}, tasks)

	require.NoError(t, s.AddTask(ctx, path, "Buy milk"))
	require.NoError(t, s.CompleteTask(ctx, path, 4))
	require.NoError(t, s.DeleteTask(ctx, path, 2))

	content, err := s.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "(A) Call mom\n\nx 2024-03-05 2024-03-01 Pay rent\n2024-03-05 Buy milk\n", content)

	assert.ErrorIs(t, s.CompleteTask(ctx, path, 99), service.ErrNotFound)
	assert.ErrorIs(t, s.DeleteTask(ctx, path, 0), service.ErrNotFound)
}

func TestTaskOperations_DatesDisabled(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	sf := settings.NewFile(filepath.Join(dir, "settings.yaml"))
	require.NoError(t, sf.Update(func(st *settings.Settings) error {
		st.CreateCreationDate = false
		st.CreateCompletionDate = false
		return nil
	}))
	s := store.New(sf)
	path := filepath.Join(dir, "todo.txt")
	require.NoError(t, s.SaveFile(ctx, path, "2024-03-01 Pay rent\n"))

	require.NoError(t, s.AddTask(ctx, path, "Buy milk"))
	require.NoError(t, s.CompleteTask(ctx, path, 1))

	content, err := s.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "x 2024-03-01 Pay rent\nBuy milk\n", content)
}

func TestReadFile_Missing(t *testing.T) {
	s, dir := newStore(t)

	_, err := s.ReadFile(context.Background(), filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, service.ErrNotFound)
}
