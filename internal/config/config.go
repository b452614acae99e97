// Package config handles XDG configuration directory and file paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "2do"

	// SettingsFile is the user settings filename.
	SettingsFile = "settings.yaml"

	// GoogleClientFile is the Google OAuth client credentials filename.
	GoogleClientFile = "oauth_client.json"

	// DropboxClientFile holds the Dropbox app key.
	DropboxClientFile = "dropbox_client.json"

	// DefaultTodoFileName is the suggested name for new task lists.
	DefaultTodoFileName = "todo.txt"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// AssumeYes answers "Replace" to overwrite confirmations.
	AssumeYes bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/2do or $HOME/.config/2do.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// ClientPath returns the path to the OAuth client file of a provider.
func (c *Config) ClientPath(provider string) string {
	if provider == "dropbox" {
		return filepath.Join(c.Dir, DropboxClientFile)
	}
	return filepath.Join(c.Dir, GoogleClientFile)
}

// TokenPath returns the path to the stored OAuth token of a provider.
func (c *Config) TokenPath(provider string) string {
	return filepath.Join(c.Dir, fmt.Sprintf("token_%s.json", provider))
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasClient checks if the OAuth client file of a provider exists.
func (c *Config) HasClient(provider string) bool {
	_, err := os.Stat(c.ClientPath(provider))
	return err == nil
}

// HasToken checks if the token file of a provider exists.
func (c *Config) HasToken(provider string) bool {
	_, err := os.Stat(c.TokenPath(provider))
	return err == nil
}

// RemoveToken deletes the token file of a provider.
func (c *Config) RemoveToken(provider string) error {
	return os.Remove(c.TokenPath(provider))
}
