// Package dropbox reads and writes files in the app folder of a Dropbox
// account through the Dropbox SDK.
package dropbox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sdk "github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/auth"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"

	"github.com/Petemir/2do-txt/internal/service"
)

// APITimeout is the timeout for API calls.
const APITimeout = 30 * time.Second

// Client uploads files to the app folder of a Dropbox account.
type Client struct {
	http    *http.Client
	baseURL string
}

// New creates a client. httpClient must add the account's bearer token,
// e.g. one returned by oauth2.NewClient.
func New(httpClient *http.Client) *Client {
	return &Client{http: httpClient}
}

// NewWithBaseURL creates a client against a different API host (for testing).
func NewWithBaseURL(httpClient *http.Client, baseURL string) *Client {
	return &Client{http: httpClient, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// api returns an SDK client whose requests are bound to ctx.
func (c *Client) api(ctx context.Context) files.Client {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	cfg := sdk.Config{
		Client: &http.Client{Transport: ctxTransport{ctx: ctx, base: base}},
	}
	if c.baseURL != "" {
		baseURL := c.baseURL
		cfg.URLGenerator = func(hostType, namespace, route string) string {
			return fmt.Sprintf("%s/2/%s/%s", baseURL, namespace, route)
		}
	}
	return files.New(cfg)
}

// ctxTransport attaches a context to every request, since the SDK calls
// take none.
type ctxTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t ctxTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}

// Upload writes content to /name, overwriting any existing file.
func (c *Client) Upload(ctx context.Context, name, content string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	arg := files.NewUploadArg(remotePath(name))
	arg.Mode = &files.WriteMode{Tagged: sdk.Tagged{Tag: files.WriteModeOverwrite}}
	arg.Mute = true

	if _, err := c.api(ctx).Upload(arg, strings.NewReader(content)); err != nil {
		return wrapError(err)
	}
	return nil
}

// Download returns the content of /name, or service.ErrNotFound.
func (c *Client) Download(ctx context.Context, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, body, err := c.api(ctx).Download(files.NewDownloadArg(remotePath(name)))
	if err != nil {
		var apiErr files.DownloadAPIError
		if errors.As(err, &apiErr) && isNotFound(apiErr.EndpointError) {
			return "", fmt.Errorf("%s: %w", name, service.ErrNotFound)
		}
		return "", wrapError(err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", wrapError(err)
	}
	return string(data), nil
}

func remotePath(name string) string {
	return "/" + strings.TrimPrefix(name, "/")
}

func isNotFound(e *files.DownloadError) bool {
	return e != nil && e.Tag == files.DownloadErrorPath &&
		e.Path != nil && e.Path.Tag == files.LookupErrorNotFound
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out: %w", err)
	}

	var authErr auth.AuthAPIError
	if errors.As(err, &authErr) {
		return fmt.Errorf("token expired or revoked (run: 2do connect dropbox): %w", err)
	}

	var rateErr auth.RateLimitAPIError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("rate limited by dropbox: %w", err)
	}

	var uploadErr files.UploadAPIError
	if errors.As(err, &uploadErr) {
		return fmt.Errorf("dropbox: %s", uploadErr.ErrorSummary)
	}

	return fmt.Errorf("dropbox: %w", err)
}
