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
	"github.com/Petemir/2do-txt/internal/settings"
)

func init() {
	Register(&SettingsCmd{})
}

// SettingsCmd implements the settings command.
type SettingsCmd struct{}

func (c *SettingsCmd) Name() string      { return "settings" }
func (c *SettingsCmd) Aliases() []string { return []string{"set"} }
func (c *SettingsCmd) Synopsis() string  { return "Show or change settings" }
func (c *SettingsCmd) Usage() string {
	return "2do settings [creation-date | completion-date | notifications | cloud <provider|none>]"
}
func (c *SettingsCmd) NeedsServices() bool { return true }

func (c *SettingsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SettingsCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Services, args []string, out, errOut io.Writer) int {
	panel := settings.NewPanel(settings.NewFile(cfg.SettingsPath()), svc.Notifications)

	if len(args) == 0 {
		return c.show(ctx, panel, svc, out, errOut)
	}

	var (
		label string
		value string
		err   error
	)
	switch args[0] {
	case "creation-date":
		label = "creation date"
		var v bool
		v, err = panel.ToggleCreationDate()
		value = output.OnOff(v)
	case "completion-date":
		label = "completion date"
		var v bool
		v, err = panel.ToggleCompletionDate()
		value = output.OnOff(v)
	case "notifications":
		label = "notifications"
		var v bool
		v, err = panel.ToggleNotifications(ctx)
		value = output.OnOff(v)
	case "cloud":
		if len(args) < 2 {
			fmt.Fprintln(errOut, "error: provider required (dropbox, googledrive or none)")
			return exitcode.UserError
		}
		label = "sync new files to"
		value, err = panel.SetCloudTarget(args[1])
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	default:
		fmt.Fprintf(errOut, "error: unknown setting: %s\n", args[0])
		return exitcode.UserError
	}
	if err != nil {
		return backendError(errOut, err)
	}

	if !cfg.Quiet {
		output.FormatSetting(out, label, value)
	}
	return exitcode.Success
}

func (c *SettingsCmd) show(ctx context.Context, panel *settings.Panel, svc *service.Services, out, errOut io.Writer) int {
	st, err := panel.Current()
	if err != nil {
		return backendError(errOut, err)
	}

	current, err := svc.Store.ActiveList(ctx)
	if errors.Is(err, service.ErrNoActiveList) {
		current = "(none)"
	} else if err != nil {
		return backendError(errOut, err)
	}

	output.FormatSetting(out, "current file", current)
	output.FormatSetting(out, "creation date", output.OnOff(st.CreateCreationDate))
	output.FormatSetting(out, "completion date", output.OnOff(st.CreateCompletionDate))
	output.FormatSetting(out, "notifications", output.OnOff(st.ShowNotifications))
	output.FormatSetting(out, "sync new files to", st.CloudTarget)
	for _, client := range svc.Cloud.Clients() {
		output.FormatSetting(out, string(client.ID), string(client.Status))
	}
	return exitcode.Success
}
