package cloud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
	"golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"

	"github.com/Petemir/2do-txt/internal/config"
	"github.com/Petemir/2do-txt/internal/service"
)

// dropboxClient is the format of dropbox_client.json.
type dropboxClient struct {
	AppKey    string `json:"app_key"`
	AppSecret string `json:"app_secret,omitempty"`
}

// OAuthConfig loads the OAuth client configuration of a provider.
func OAuthConfig(cfg *config.Config, id service.CloudStorageID) (*oauth2.Config, error) {
	data, err := os.ReadFile(cfg.ClientPath(id.Slug()))
	if err != nil {
		return nil, fmt.Errorf("failed to read client credentials for %s: %w", id, err)
	}

	switch id {
	case service.GoogleDrive:
		oc, err := google.ConfigFromJSON(data, drive.DriveFileScope)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", config.GoogleClientFile, err)
		}
		return oc, nil
	case service.Dropbox:
		var dc dropboxClient
		if err := json.Unmarshal(data, &dc); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", config.DropboxClientFile, err)
		}
		if dc.AppKey == "" {
			return nil, fmt.Errorf("invalid %s: app_key is empty", config.DropboxClientFile)
		}
		return &oauth2.Config{
			ClientID:     dc.AppKey,
			ClientSecret: dc.AppSecret,
			Endpoint:     endpoints.Dropbox,
		}, nil
	default:
		return nil, fmt.Errorf("unknown cloud storage: %s", id)
	}
}

// AuthCodeOptions returns the provider-specific options that request a
// refresh token.
func AuthCodeOptions(id service.CloudStorageID) []oauth2.AuthCodeOption {
	if id == service.Dropbox {
		return []oauth2.AuthCodeOption{oauth2.SetAuthURLParam("token_access_type", "offline")}
	}
	return []oauth2.AuthCodeOption{oauth2.AccessTypeOffline}
}

// LoadToken reads a stored token.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return &token, nil
}

// SaveToken saves a token to a file with mode 0600.
func SaveToken(path string, token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// HTTPClient returns an HTTP client that authenticates as the connected
// account of a provider and refreshes its token as needed.
func HTTPClient(ctx context.Context, cfg *config.Config, id service.CloudStorageID) (*http.Client, error) {
	oc, err := OAuthConfig(cfg, id)
	if err != nil {
		return nil, err
	}
	token, err := LoadToken(cfg.TokenPath(id.Slug()))
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, oc.TokenSource(ctx, token)), nil
}
