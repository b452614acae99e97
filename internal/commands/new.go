package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Petemir/2do-txt/internal/config"
	"github.com/Petemir/2do-txt/internal/exitcode"
	"github.com/Petemir/2do-txt/internal/filecreate"
	"github.com/Petemir/2do-txt/internal/prompt"
	"github.com/Petemir/2do-txt/internal/service"
	"github.com/Petemir/2do-txt/internal/settings"
)

func init() {
	Register(&NewCmd{})
}

// NewCmd implements the new command.
type NewCmd struct {
	example   bool
	firstTask bool
	cloud     string
	force     bool
}

// SetOptions sets the command flags (for testing).
func (c *NewCmd) SetOptions(example, firstTask bool, cloud string, force bool) {
	c.example = example
	c.firstTask = firstTask
	c.cloud = cloud
	c.force = force
}

func (c *NewCmd) Name() string      { return "new" }
func (c *NewCmd) Aliases() []string { return []string{"create"} }
func (c *NewCmd) Synopsis() string  { return "Create a todo.txt and make it active" }
func (c *NewCmd) Usage() string {
	return "2do new [--example] [--first-task] [--cloud <provider|none>] [--force] [path]"
}
func (c *NewCmd) NeedsServices() bool { return true }

func (c *NewCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.example, "example", false, "")
	fs.BoolVar(&c.firstTask, "first-task", false, "")
	fs.StringVar(&c.cloud, "cloud", "", "")
	fs.BoolVar(&c.force, "force", false, "")
}

func (c *NewCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Services, args []string, out, errOut io.Writer) int {
	target, explicit, code := c.cloudTarget(cfg, errOut)
	if code != exitcode.Success {
		return code
	}

	sel := service.Selection{Path: strings.TrimSpace(strings.Join(args, " "))}
	if sel.Path == "" {
		var err error
		sel, err = svc.Picker.PickPath(ctx, config.DefaultTodoFileName)
		if err != nil {
			return backendError(errOut, err)
		}
	}
	if sel.Path == "" {
		return exitcode.Success
	}

	if explicit && svc.Cloud.Status(target) != service.Connected {
		fmt.Fprintf(errOut, "warning: %s is not connected, not syncing (run: 2do connect %s)\n", target, target.Slug())
	}

	confirmer := svc.Confirmer
	if c.force || cfg.AssumeYes {
		confirmer = prompt.Auto{Answer: service.ChoiceReplace}
	}

	orch := filecreate.New(filecreate.Deps{
		Filesystem: svc.Filesystem,
		Store:      svc.Store,
		Cloud:      svc.Cloud,
		Confirmer:  confirmer,
		TaskDialog: svc.TaskDialog,
		Examples:   svc.Examples,
	})

	outcome, err := orch.CreateFile(ctx, filecreate.Request{
		Path:               sel.Path,
		SeedExample:        c.example,
		PromptFirstTask:    c.firstTask,
		TargetCloud:        target,
		OverwriteConfirmed: sel.OverwriteConfirmed,
	})
	if err != nil {
		return backendError(errOut, err)
	}

	if !cfg.Quiet {
		switch outcome {
		case filecreate.Created:
			fmt.Fprintln(out, "ok")
		case filecreate.Cancelled:
			fmt.Fprintln(out, "cancelled")
		}
	}
	return exitcode.Success
}

// cloudTarget returns the provider to sync to: the --cloud flag, or the
// default from settings. explicit is true when the flag named a provider.
func (c *NewCmd) cloudTarget(cfg *config.Config, errOut io.Writer) (service.CloudStorageID, bool, int) {
	if strings.EqualFold(c.cloud, settings.NoCloudTarget) {
		return "", false, exitcode.Success
	}
	if c.cloud != "" {
		id, err := service.ParseCloudStorageID(c.cloud)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return "", false, exitcode.UserError
		}
		return id, true, exitcode.Success
	}

	st, err := settings.NewFile(cfg.SettingsPath()).Load()
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return "", false, exitcode.UserError
	}
	id, _ := st.Target()
	return id, false, exitcode.Success
}
