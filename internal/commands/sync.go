package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Petemir/2do-txt/internal/config"
	"github.com/Petemir/2do-txt/internal/exitcode"
	"github.com/Petemir/2do-txt/internal/service"
	"github.com/Petemir/2do-txt/internal/settings"
	"github.com/Petemir/2do-txt/internal/todotxt"
)

func init() {
	Register(&SyncCmd{})
}

// SyncCmd implements the sync command.
type SyncCmd struct {
	cloud   string
	archive bool
}

// SetOptions sets the command flags (for testing).
func (c *SyncCmd) SetOptions(cloud string, archive bool) {
	c.cloud = cloud
	c.archive = archive
}

func (c *SyncCmd) Name() string      { return "sync" }
func (c *SyncCmd) Aliases() []string { return []string{"upload"} }
func (c *SyncCmd) Synopsis() string  { return "Upload a todo.txt to cloud storage" }
func (c *SyncCmd) Usage() string {
	return "2do sync [--cloud <provider>] [--archive] [path]"
}
func (c *SyncCmd) NeedsServices() bool { return true }

func (c *SyncCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.cloud, "cloud", "", "")
	fs.BoolVar(&c.archive, "archive", false, "")
}

func (c *SyncCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Services, args []string, out, errOut io.Writer) int {
	id, code := c.provider(cfg, errOut)
	if code != exitcode.Success {
		return code
	}

	path, code := resolveFile(ctx, svc, strings.Join(args, " "), errOut)
	if code != exitcode.Success {
		return code
	}

	content, err := svc.Store.ReadFile(ctx, path)
	if err != nil {
		return backendError(errOut, err)
	}
	if c.archive {
		content = completedLines(content)
	}

	err = svc.Cloud.Upload(ctx, service.UploadRequest{
		Path:     path,
		Content:  content,
		Provider: id,
		Archive:  c.archive,
	})
	if errors.Is(err, service.ErrNotConnected) {
		fmt.Fprintf(errOut, "error: %s is not connected (run: 2do connect %s)\n", id, id.Slug())
		return exitcode.AuthError
	}
	if err != nil {
		return backendError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// provider returns the --cloud flag or the default target from settings.
func (c *SyncCmd) provider(cfg *config.Config, errOut io.Writer) (service.CloudStorageID, int) {
	if c.cloud != "" {
		id, err := service.ParseCloudStorageID(c.cloud)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return "", exitcode.UserError
		}
		return id, exitcode.Success
	}

	st, err := settings.NewFile(cfg.SettingsPath()).Load()
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return "", exitcode.UserError
	}
	id, ok := st.Target()
	if !ok {
		fmt.Fprintln(errOut, "error: no cloud storage selected (use --cloud or 2do settings cloud <provider>)")
		return "", exitcode.UserError
	}
	return id, exitcode.Success
}

// completedLines keeps the completed tasks of a todo.txt.
func completedLines(content string) string {
	var b strings.Builder
	for _, line := range strings.Split(content, "\n") {
		if todotxt.IsBlank(line) || !todotxt.Parse(line).Completed {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
