// Package cloud implements service.CloudStorage on top of the provider
// clients in its subpackages.
package cloud

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Petemir/2do-txt/internal/cloud/dropbox"
	"github.com/Petemir/2do-txt/internal/cloud/googledrive"
	"github.com/Petemir/2do-txt/internal/config"
	"github.com/Petemir/2do-txt/internal/service"
)

// ArchiveSuffix replaces the extension of a list to name its archive file.
const ArchiveSuffix = ".done.txt"

// Uploader reads and writes files of a provider. Upload replaces any
// existing copy; Download returns service.ErrNotFound for a missing file.
type Uploader interface {
	Upload(ctx context.Context, name, content string) error
	Download(ctx context.Context, name string) (string, error)
}

// Factory creates the Uploader of a connected provider.
type Factory func(ctx context.Context) (Uploader, error)

// Storage dispatches uploads to provider clients. A provider is connected
// when its token is stored in the config directory.
type Storage struct {
	cfg       *config.Config
	factories map[service.CloudStorageID]Factory
}

// New creates a Storage with explicit factories.
func New(cfg *config.Config, factories map[service.CloudStorageID]Factory) *Storage {
	return &Storage{cfg: cfg, factories: factories}
}

// NewDefault creates a Storage with the Dropbox and Google Drive clients.
func NewDefault(cfg *config.Config) *Storage {
	return New(cfg, map[service.CloudStorageID]Factory{
		service.Dropbox: func(ctx context.Context) (Uploader, error) {
			hc, err := HTTPClient(ctx, cfg, service.Dropbox)
			if err != nil {
				return nil, err
			}
			return dropbox.New(hc), nil
		},
		service.GoogleDrive: func(ctx context.Context) (Uploader, error) {
			hc, err := HTTPClient(ctx, cfg, service.GoogleDrive)
			if err != nil {
				return nil, err
			}
			return googledrive.New(ctx, hc)
		},
	})
}

// Status implements service.CloudStorage.
func (s *Storage) Status(id service.CloudStorageID) service.ConnectionStatus {
	if _, ok := s.factories[id]; !ok {
		return service.Disconnected
	}
	if !s.cfg.HasToken(id.Slug()) {
		return service.Disconnected
	}
	return service.Connected
}

// Clients implements service.CloudStorage.
func (s *Storage) Clients() []service.CloudClient {
	clients := make([]service.CloudClient, 0, len(service.CloudStorageIDs))
	for _, id := range service.CloudStorageIDs {
		clients = append(clients, service.CloudClient{ID: id, Status: s.Status(id)})
	}
	return clients
}

// Upload implements service.CloudStorage.
func (s *Storage) Upload(ctx context.Context, req service.UploadRequest) error {
	if s.Status(req.Provider) != service.Connected {
		return fmt.Errorf("%s: %w", req.Provider, service.ErrNotConnected)
	}

	u, err := s.factories[req.Provider](ctx)
	if err != nil {
		return err
	}

	name := RemoteName(req.Path, req.Archive)
	content := req.Content
	if req.Archive {
		existing, err := u.Download(ctx, name)
		if err != nil && !errors.Is(err, service.ErrNotFound) {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		content = MergeArchive(existing, req.Content)
	}

	slog.Debug("uploading", "provider", req.Provider, "path", req.Path, "remote", name, "archive", req.Archive)
	return u.Upload(ctx, name, content)
}

// RemoteName returns the remote file name of a local path. The archive of
// work.txt is work.done.txt.
func RemoteName(path string, archive bool) string {
	base := filepath.Base(path)
	if archive {
		return strings.TrimSuffix(base, filepath.Ext(base)) + ArchiveSuffix
	}
	return base
}

// MergeArchive appends the lines of added missing from existing. Lines
// already archived are kept once, in their original order.
func MergeArchive(existing, added string) string {
	var b strings.Builder
	seen := make(map[string]bool)
	for _, text := range []string{existing, added} {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimRight(line, "\r")
			if strings.TrimSpace(line) == "" || seen[line] {
				continue
			}
			seen[line] = true
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
