package fsys_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Petemir/2do-txt/internal/fsys"
)

func TestIsFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	file := filepath.Join(dir, "todo.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	ok, err := fsys.OS{}.IsFile(ctx, file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fsys.OS{}.IsFile(ctx, dir)
	require.NoError(t, err)
	assert.False(t, ok, "directories are not files")

	ok, err = fsys.OS{}.IsFile(ctx, filepath.Join(dir, "missing.txt"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetUniqueFilePath(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	suggested := filepath.Join(dir, "todo.txt")

	got, err := fsys.OS{}.GetUniqueFilePath(ctx, suggested)
	require.NoError(t, err)
	assert.Equal(t, suggested, got)

	require.NoError(t, os.WriteFile(suggested, nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "todo_1.txt"), nil, 0644))

	got, err = fsys.OS{}.GetUniqueFilePath(ctx, suggested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "todo_2.txt"), got)
}

func TestGetUniqueFilePath_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fsys.OS{}.GetUniqueFilePath(ctx, filepath.Join(t.TempDir(), "todo.txt"))
	assert.ErrorIs(t, err, context.Canceled)
}
