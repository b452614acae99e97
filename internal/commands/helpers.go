package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/Petemir/2do-txt/internal/exitcode"
	"github.com/Petemir/2do-txt/internal/service"
)

// resolveFile returns the file a task command operates on: the --file
// flag if given, otherwise the active list.
func resolveFile(ctx context.Context, svc *service.Services, file string, errOut io.Writer) (string, int) {
	if file != "" {
		abs, err := filepath.Abs(file)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return "", exitcode.UserError
		}
		return abs, exitcode.Success
	}

	path, err := svc.Store.ActiveList(ctx)
	if errors.Is(err, service.ErrNoActiveList) {
		fmt.Fprintln(errOut, "error: no active todo.txt (run: 2do new or 2do open <path>)")
		return "", exitcode.UserError
	}
	if err != nil {
		return "", backendError(errOut, err)
	}
	return path, exitcode.Success
}

// backendError reports a collaborator failure and returns its exit code.
// Not-found errors are user errors.
func backendError(errOut io.Writer, err error) int {
	slog.Debug("command failed", "error", err)
	if errors.Is(err, service.ErrNotFound) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}
