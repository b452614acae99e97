package commands

import (
	"context"
	"flag"
	"io"

	"github.com/Petemir/2do-txt/internal/config"
	"github.com/Petemir/2do-txt/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct {
	file string
}

// SetFile sets the file flag (for testing).
func (c *RmCmd) SetFile(path string) {
	c.file = path
}

func (c *RmCmd) Name() string        { return "rm" }
func (c *RmCmd) Aliases() []string   { return []string{"del"} }
func (c *RmCmd) Synopsis() string    { return "Delete a task" }
func (c *RmCmd) Usage() string       { return "2do rm [--file <path>] <n>" }
func (c *RmCmd) NeedsServices() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "file", "", "")
	fs.StringVar(&c.file, "f", "", "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Services, args []string, out, errOut io.Writer) int {
	return runTaskEdit(ctx, cfg, svc, c.file, args, out, errOut, svc.Store.DeleteTask)
}
