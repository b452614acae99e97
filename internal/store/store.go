// Package store implements service.TaskStore on the local filesystem.
// Known files and the active list are recorded in the settings file.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/Petemir/2do-txt/internal/service"
	"github.com/Petemir/2do-txt/internal/settings"
	"github.com/Petemir/2do-txt/internal/todotxt"
)

// FileStore stores todo.txt files on disk.
type FileStore struct {
	settings *settings.File
	now      func() time.Time
}

// New creates a FileStore that records known files in sf.
func New(sf *settings.File) *FileStore {
	return &FileStore{settings: sf, now: time.Now}
}

// SetClock replaces the clock used for creation and completion dates (for testing).
func (s *FileStore) SetClock(now func() time.Time) {
	s.now = now
}

// SaveFile implements service.TaskStore.
func (s *FileStore) SaveFile(ctx context.Context, path, content string) error {
	if err := writeFileAtomic(path, []byte(content)); err != nil {
		return err
	}
	slog.Debug("saved todo file", "path", path, "bytes", len(content))
	return nil
}

// AddFilePath implements service.TaskStore.
func (s *FileStore) AddFilePath(ctx context.Context, path string) error {
	path = normalize(path)
	return s.settings.Update(func(st *settings.Settings) error {
		if !slices.Contains(st.TodoFilePaths, path) {
			st.TodoFilePaths = append(st.TodoFilePaths, path)
		}
		return nil
	})
}

// SetActiveList implements service.TaskStore.
func (s *FileStore) SetActiveList(ctx context.Context, path string) error {
	path = normalize(path)
	return s.settings.Update(func(st *settings.Settings) error {
		st.ActiveList = path
		return nil
	})
}

// ActiveList implements service.TaskStore.
func (s *FileStore) ActiveList(ctx context.Context) (string, error) {
	st, err := s.settings.Load()
	if err != nil {
		return "", err
	}
	if st.ActiveList == "" {
		return "", service.ErrNoActiveList
	}
	return st.ActiveList, nil
}

// FilePaths implements service.TaskStore.
func (s *FileStore) FilePaths(ctx context.Context) ([]string, error) {
	st, err := s.settings.Load()
	if err != nil {
		return nil, err
	}
	return slices.Clone(st.TodoFilePaths), nil
}

// CloseFile implements service.TaskStore.
func (s *FileStore) CloseFile(ctx context.Context, path string) error {
	path = normalize(path)
	return s.settings.Update(func(st *settings.Settings) error {
		i := slices.Index(st.TodoFilePaths, path)
		if i < 0 {
			return fmt.Errorf("file %w: %s", service.ErrNotFound, path)
		}
		st.TodoFilePaths = slices.Delete(st.TodoFilePaths, i, i+1)
		if st.ActiveList == path {
			st.ActiveList = ""
			if len(st.TodoFilePaths) > 0 {
				st.ActiveList = st.TodoFilePaths[0]
			}
		}
		return nil
	})
}

// ReadFile implements service.TaskStore.
func (s *FileStore) ReadFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("file %w: %s", service.ErrNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// OpenTasks implements service.TaskStore.
func (s *FileStore) OpenTasks(ctx context.Context, path string) ([]service.Task, error) {
	lines, err := s.readLines(ctx, path)
	if err != nil {
		return nil, err
	}

	var tasks []service.Task
	for i, line := range lines {
		if todotxt.IsBlank(line) || todotxt.Parse(line).Completed {
			continue
		}
		tasks = append(tasks, service.Task{Line: i + 1, Raw: line})
	}
	return tasks, nil
}

// AddTask implements service.TaskStore.
func (s *FileStore) AddTask(ctx context.Context, path, text string) error {
	st, err := s.settings.Load()
	if err != nil {
		return err
	}
	lines, err := s.readLines(ctx, path)
	if err != nil {
		return err
	}

	var created time.Time
	if st.CreateCreationDate {
		created = s.now()
	}
	lines = append(lines, todotxt.NewLine(text, created))
	return s.writeLines(path, lines)
}

// CompleteTask implements service.TaskStore.
func (s *FileStore) CompleteTask(ctx context.Context, path string, line int) error {
	st, err := s.settings.Load()
	if err != nil {
		return err
	}
	lines, err := s.readLines(ctx, path)
	if err != nil {
		return err
	}
	if line < 1 || line > len(lines) {
		return fmt.Errorf("task %w: line %d", service.ErrNotFound, line)
	}

	var done time.Time
	if st.CreateCompletionDate {
		done = s.now()
	}
	lines[line-1] = todotxt.Complete(lines[line-1], done)
	return s.writeLines(path, lines)
}

// DeleteTask implements service.TaskStore.
func (s *FileStore) DeleteTask(ctx context.Context, path string, line int) error {
	lines, err := s.readLines(ctx, path)
	if err != nil {
		return err
	}
	if line < 1 || line > len(lines) {
		return fmt.Errorf("task %w: line %d", service.ErrNotFound, line)
	}
	lines = slices.Delete(lines, line-1, line)
	return s.writeLines(path, lines)
}

func (s *FileStore) readLines(ctx context.Context, path string) ([]string, error) {
	content, err := s.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}

func (s *FileStore) writeLines(path string, lines []string) error {
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	return writeFileAtomic(path, []byte(content))
}

// normalize makes relative paths absolute so the registry does not
// depend on the working directory.
func normalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
