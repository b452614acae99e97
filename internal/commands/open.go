package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Petemir/2do-txt/internal/config"
	"github.com/Petemir/2do-txt/internal/exitcode"
	"github.com/Petemir/2do-txt/internal/service"
)

func init() {
	Register(&OpenCmd{})
}

// OpenCmd implements the open command.
type OpenCmd struct{}

func (c *OpenCmd) Name() string        { return "open" }
func (c *OpenCmd) Aliases() []string   { return nil }
func (c *OpenCmd) Synopsis() string    { return "Open an existing todo.txt and make it active" }
func (c *OpenCmd) Usage() string       { return "2do open [common flags] <path>" }
func (c *OpenCmd) NeedsServices() bool { return true }

func (c *OpenCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *OpenCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Services, args []string, out, errOut io.Writer) int {
	path := strings.TrimSpace(strings.Join(args, " "))
	if path == "" {
		fmt.Fprintln(errOut, "error: path required")
		return exitcode.UserError
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	exists, err := svc.Filesystem.IsFile(ctx, abs)
	if err != nil {
		return backendError(errOut, err)
	}
	if !exists {
		fmt.Fprintf(errOut, "error: file not found: %s\n", path)
		return exitcode.UserError
	}

	if err := svc.Store.AddFilePath(ctx, abs); err != nil {
		return backendError(errOut, err)
	}
	if err := svc.Store.SetActiveList(ctx, abs); err != nil {
		return backendError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
