package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Petemir/2do-txt/internal/config"
	"github.com/Petemir/2do-txt/internal/exitcode"
	"github.com/Petemir/2do-txt/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	file string
}

// SetFile sets the file flag (for testing).
func (c *AddCmd) SetFile(path string) {
	c.file = path
}

func (c *AddCmd) Name() string        { return "add" }
func (c *AddCmd) Aliases() []string   { return []string{"a"} }
func (c *AddCmd) Synopsis() string    { return "Create a task" }
func (c *AddCmd) Usage() string       { return "2do add [--file <path>] <text...>" }
func (c *AddCmd) NeedsServices() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "file", "", "")
	fs.StringVar(&c.file, "f", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Services, args []string, out, errOut io.Writer) int {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}

	path, code := resolveFile(ctx, svc, c.file, errOut)
	if code != exitcode.Success {
		return code
	}

	if err := svc.Store.AddTask(ctx, path, text); err != nil {
		return backendError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
