// Package fsys implements service.Filesystem on the local disk.
package fsys

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxUniqueAttempts bounds the search for a free file name.
const maxUniqueAttempts = 1000

// OS is the local filesystem.
type OS struct{}

// IsFile implements service.Filesystem.
func (OS) IsFile(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}

// GetUniqueFilePath implements service.Filesystem.
// For "todo.txt" it tries todo.txt, todo_1.txt, todo_2.txt, ...
func (o OS) GetUniqueFilePath(ctx context.Context, suggested string) (string, error) {
	dir := filepath.Dir(suggested)
	ext := filepath.Ext(suggested)
	stem := strings.TrimSuffix(filepath.Base(suggested), ext)

	candidate := suggested
	for i := 1; i <= maxUniqueAttempts; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if _, err := os.Lstat(candidate); errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		} else if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", candidate, err)
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
	}
	return "", fmt.Errorf("no free file name for %s", suggested)
}
