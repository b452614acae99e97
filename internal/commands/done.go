package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/Petemir/2do-txt/internal/config"
	"github.com/Petemir/2do-txt/internal/exitcode"
	"github.com/Petemir/2do-txt/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct {
	file string
}

// SetFile sets the file flag (for testing).
func (c *DoneCmd) SetFile(path string) {
	c.file = path
}

func (c *DoneCmd) Name() string        { return "done" }
func (c *DoneCmd) Aliases() []string   { return []string{"do"} }
func (c *DoneCmd) Synopsis() string    { return "Mark a task completed" }
func (c *DoneCmd) Usage() string       { return "2do done [--file <path>] <n>" }
func (c *DoneCmd) NeedsServices() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "file", "", "")
	fs.StringVar(&c.file, "f", "", "")
}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Services, args []string, out, errOut io.Writer) int {
	return runTaskEdit(ctx, cfg, svc, c.file, args, out, errOut, svc.Store.CompleteTask)
}

// runTaskEdit resolves a task number and applies edit to its line.
// Shared by done and rm.
func runTaskEdit(ctx context.Context, cfg *config.Config, svc *service.Services, file string, args []string, out, errOut io.Writer,
	edit func(ctx context.Context, path string, line int) error) int {
	num, err := ParseTaskRef(args)
	if err != nil {
		if errors.Is(err, ErrTaskRefRequired) {
			fmt.Fprintln(errOut, "error: task reference required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	path, code := resolveFile(ctx, svc, file, errOut)
	if code != exitcode.Success {
		return code
	}

	task, err := findTaskByNumber(ctx, svc.Store, path, num)
	if err != nil {
		if errors.Is(err, ErrTaskOutOfRange) {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return backendError(errOut, err)
	}

	if err := edit(ctx, path, task.Line); err != nil {
		return backendError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
