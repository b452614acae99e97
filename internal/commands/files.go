package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/Petemir/2do-txt/internal/config"
	"github.com/Petemir/2do-txt/internal/exitcode"
	"github.com/Petemir/2do-txt/internal/output"
	"github.com/Petemir/2do-txt/internal/service"
)

func init() {
	Register(&FilesCmd{})
}

// FilesCmd implements the files command.
type FilesCmd struct{}

func (c *FilesCmd) Name() string        { return "files" }
func (c *FilesCmd) Aliases() []string   { return nil }
func (c *FilesCmd) Synopsis() string    { return "Print known todo.txt files" }
func (c *FilesCmd) Usage() string       { return "2do files [common flags]" }
func (c *FilesCmd) NeedsServices() bool { return true }

func (c *FilesCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *FilesCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Services, args []string, out, errOut io.Writer) int {
	paths, err := svc.Store.FilePaths(ctx)
	if err != nil {
		return backendError(errOut, err)
	}

	active, err := svc.Store.ActiveList(ctx)
	if err != nil && !errors.Is(err, service.ErrNoActiveList) {
		return backendError(errOut, err)
	}

	if len(paths) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no files (run: 2do new)")
		}
		return exitcode.Success
	}

	for _, p := range paths {
		output.FormatFileName(out, p, p == active)
	}
	return exitcode.Success
}
