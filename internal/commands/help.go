package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/Petemir/2do-txt/internal/config"
	"github.com/Petemir/2do-txt/internal/exitcode"
	"github.com/Petemir/2do-txt/internal/kbd"
	"github.com/Petemir/2do-txt/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string        { return "help" }
func (c *HelpCmd) Aliases() []string   { return nil }
func (c *HelpCmd) Synopsis() string    { return "Print usage" }
func (c *HelpCmd) Usage() string       { return "2do help" }
func (c *HelpCmd) NeedsServices() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Services, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)

	hints := kbd.Line(out,
		kbd.Binding{Key: "↑/↓", Help: "move"},
		kbd.Binding{Key: "enter", Help: "select"},
		kbd.Binding{Key: "ctrl+c", Help: "cancel"},
	)
	if hints != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Prompts:")
		fmt.Fprintf(out, "  %s\n", hints)
	}
	return exitcode.Success
}

const helpText = `Usage:
  2do                                                List open tasks of the active file
  2do list [common flags] [--file <path>]
  2do due [common flags] [--file <path>]
  2do add [common flags] [--file <path>] <text...>
  2do done [common flags] [--file <path>] <n>
  2do rm [common flags] [--file <path>] <n>
  2do new [common flags] [--example] [--first-task] [--cloud <provider|none>] [--force] [path]
  2do open [common flags] <path>
  2do close [common flags] [path]
  2do files [common flags]
  2do settings [common flags] [creation-date | completion-date | notifications | cloud <provider|none>]
  2do sync [common flags] [--cloud <provider>] [--archive] [path]
  2do connect [common flags] <dropbox|googledrive>
  2do disconnect [common flags] <dropbox|googledrive>
  2do help
  2do version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
  --yes            Replace existing files without asking
`
