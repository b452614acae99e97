package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Petemir/2do-txt/internal/config"
	"github.com/Petemir/2do-txt/internal/exitcode"
	"github.com/Petemir/2do-txt/internal/notify"
	"github.com/Petemir/2do-txt/internal/output"
	"github.com/Petemir/2do-txt/internal/service"
	"github.com/Petemir/2do-txt/internal/settings"
)

func init() {
	Register(&DueCmd{})
}

// DueCmd implements the due command.
type DueCmd struct {
	file string
}

// SetFile sets the file flag (for testing).
func (c *DueCmd) SetFile(path string) {
	c.file = path
}

func (c *DueCmd) Name() string        { return "due" }
func (c *DueCmd) Aliases() []string   { return nil }
func (c *DueCmd) Synopsis() string    { return "List tasks due today or earlier" }
func (c *DueCmd) Usage() string       { return "2do due [--file <path>]" }
func (c *DueCmd) NeedsServices() bool { return true }

func (c *DueCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "file", "", "")
	fs.StringVar(&c.file, "f", "", "")
}

func (c *DueCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Services, args []string, out, errOut io.Writer) int {
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

	due := notify.DueTasks(tasks, time.Now())
	if len(due) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no due tasks")
		}
		return exitcode.Success
	}

	for _, d := range due {
		output.FormatTask(out, d.Num, d.Task)
	}
	remindDue(ctx, cfg, svc, due, errOut)
	return exitcode.Success
}

// remindDue notifies about due tasks when notifications are switched on
// and permitted. Failures are reported as warnings.
func remindDue(ctx context.Context, cfg *config.Config, svc *service.Services, due []notify.DueTask, errOut io.Writer) {
	if len(due) == 0 || svc.Notifier == nil || svc.Notifications == nil {
		return
	}

	st, err := settings.NewFile(cfg.SettingsPath()).Load()
	if err != nil {
		fmt.Fprintf(errOut, "warning: %v\n", err)
		return
	}
	if !st.ShowNotifications {
		return
	}

	status, err := svc.Notifications.CheckPermission(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "warning: %v\n", err)
		return
	}
	if status != service.PermissionGranted {
		slog.Debug("notifications not permitted", "status", status)
		return
	}

	if err := notify.Send(ctx, svc.Notifier, due); err != nil {
		fmt.Fprintf(errOut, "warning: failed to show notification: %v\n", err)
	}
}
