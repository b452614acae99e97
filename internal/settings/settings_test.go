package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Petemir/2do-txt/internal/service"
	"github.com/Petemir/2do-txt/internal/settings"
)

func newFile(t *testing.T) *settings.File {
	t.Helper()
	return settings.NewFile(filepath.Join(t.TempDir(), "settings.yaml"))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	st, err := newFile(t).Load()
	require.NoError(t, err)
	assert.Equal(t, settings.Defaults(), st)

	id, ok := st.Target()
	assert.True(t, ok)
	assert.Equal(t, service.Dropbox, id)
}

func TestUpdate_PersistsChanges(t *testing.T) {
	f := newFile(t)

	err := f.Update(func(s *settings.Settings) error {
		s.CreateCreationDate = false
		s.CloudTarget = settings.NoCloudTarget
		s.TodoFilePaths = []string{"/a/todo.txt"}
		s.ActiveList = "/a/todo.txt"
		return nil
	})
	require.NoError(t, err)

	st, err := settings.NewFile(f.Path()).Load()
	require.NoError(t, err)
	assert.False(t, st.CreateCreationDate)
	assert.True(t, st.CreateCompletionDate)
	assert.Equal(t, []string{"/a/todo.txt"}, st.TodoFilePaths)
	assert.Equal(t, "/a/todo.txt", st.ActiveList)

	_, ok := st.Target()
	assert.False(t, ok)

	info, err := os.Stat(f.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestUpdate_ErrorWritesNothing(t *testing.T) {
	f := newFile(t)

	err := f.Update(func(s *settings.Settings) error {
		s.ShowNotifications = true
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	_, statErr := os.Stat(f.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	f := newFile(t)
	require.NoError(t, os.WriteFile(f.Path(), []byte("show_notifications: true\n"), 0600))

	st, err := f.Load()
	require.NoError(t, err)
	assert.True(t, st.ShowNotifications)
	assert.True(t, st.CreateCreationDate)
	assert.Equal(t, string(service.Dropbox), st.CloudTarget)
}

func TestLoad_InvalidYAML(t *testing.T) {
	f := newFile(t)
	require.NoError(t, os.WriteFile(f.Path(), []byte("todo_file_paths: [unterminated\n"), 0600))

	_, err := f.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.yaml")
}
