package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/Petemir/2do-txt/internal/config"
	"github.com/Petemir/2do-txt/internal/exitcode"
	"github.com/Petemir/2do-txt/internal/notify"
	"github.com/Petemir/2do-txt/internal/output"
	"github.com/Petemir/2do-txt/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `2do` (no args) and `2do list`.
type ListCmd struct {
	file string
}

// SetFile sets the file flag (for testing).
func (c *ListCmd) SetFile(path string) {
	c.file = path
}

func (c *ListCmd) Name() string        { return "list" }
func (c *ListCmd) Aliases() []string   { return []string{"ls"} }
func (c *ListCmd) Synopsis() string    { return "List open tasks" }
func (c *ListCmd) Usage() string       { return "2do list [--file <path>]" }
func (c *ListCmd) NeedsServices() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "file", "", "")
	fs.StringVar(&c.file, "f", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Services, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	path, code := resolveFile(ctx, svc, c.file, errOut)
	if code != exitcode.Success {
		return code
	}

	tasks, err := svc.Store.OpenTasks(ctx, path)
	if err != nil {
		return backendError(errOut, err)
	}

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	for i, task := range tasks {
		output.FormatTask(out, i+1, task)
	}
	remindDue(ctx, cfg, svc, notify.DueTasks(tasks, time.Now()), errOut)
	return exitcode.Success
}
