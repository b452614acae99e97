// Package googledrive uploads files to Google Drive.
package googledrive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/Petemir/2do-txt/internal/service"
)

const (
	// APITimeout is the timeout for API calls.
	APITimeout = 30 * time.Second

	mimeType = "text/plain"
)

// Client uploads files to the root folder of a Google Drive account.
type Client struct {
	svc *drive.Service
}

// New creates a client. httpClient must authenticate the account,
// e.g. one returned by oauth2.NewClient.
func New(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Upload writes content to name in the root folder, replacing the content
// of an existing file with the same name.
func (c *Client) Upload(ctx context.Context, name, content string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	id, err := c.findFile(ctx, name)
	if err != nil {
		return err
	}

	media := strings.NewReader(content)
	if id != "" {
		_, err = c.svc.Files.Update(id, &drive.File{}).
			Media(media, googleapi.ContentType(mimeType)).
			Context(ctx).
			Do()
	} else {
		_, err = c.svc.Files.Create(&drive.File{
			Name:     name,
			MimeType: mimeType,
			Parents:  []string{"root"},
		}).
			Media(media, googleapi.ContentType(mimeType)).
			Context(ctx).
			Do()
	}
	return wrapError(err)
}

// Download returns the content of name in the root folder, or
// service.ErrNotFound.
func (c *Client) Download(ctx context.Context, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	id, err := c.findFile(ctx, name)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("%s: %w", name, service.ErrNotFound)
	}

	resp, err := c.svc.Files.Get(id).Context(ctx).Download()
	if err != nil {
		return "", wrapError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", wrapError(err)
	}
	return string(data), nil
}

// findFile returns the ID of the first non-trashed file called name in the
// root folder, or "" if there is none.
func (c *Client) findFile(ctx context.Context, name string) (string, error) {
	resp, err := c.svc.Files.List().
		Q(Query(name)).
		Spaces("drive").
		Fields("files(id, name)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", wrapError(err)
	}
	if len(resp.Files) == 0 {
		return "", nil
	}
	return resp.Files[0].Id, nil
}

// Query builds the Drive search query for a file name in the root folder.
func Query(name string) string {
	escaped := strings.ReplaceAll(name, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `'`, `\'`)
	return fmt.Sprintf("name = '%s' and 'root' in parents and trashed = false", escaped)
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out: %w", err)
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("token expired or revoked (run: 2do connect googledrive): %w", err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", service.ErrNotFound, gerr.Message)
		}
	}

	return err
}
