package commands

import (
	"context"
	"errors"
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
	Register(&CloseCmd{})
}

// CloseCmd implements the close command.
// The file itself is left on disk.
type CloseCmd struct{}

func (c *CloseCmd) Name() string        { return "close" }
func (c *CloseCmd) Aliases() []string   { return nil }
func (c *CloseCmd) Synopsis() string    { return "Forget a todo.txt (default: the active one)" }
func (c *CloseCmd) Usage() string       { return "2do close [common flags] [path]" }
func (c *CloseCmd) NeedsServices() bool { return true }

func (c *CloseCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CloseCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Services, args []string, out, errOut io.Writer) int {
	path := strings.TrimSpace(strings.Join(args, " "))
	if path == "" {
		active, err := svc.Store.ActiveList(ctx)
		if errors.Is(err, service.ErrNoActiveList) {
			fmt.Fprintln(errOut, "error: no active todo.txt")
			return exitcode.UserError
		}
		if err != nil {
			return backendError(errOut, err)
		}
		path = active
	} else if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if err := svc.Store.CloseFile(ctx, path); err != nil {
		return backendError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
