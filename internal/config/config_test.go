package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Petemir/2do-txt/internal/config"
)

func TestNew_ExplicitDir(t *testing.T) {
	cfg, err := config.New("/tmp/2do-test")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/2do-test", cfg.Dir)
	assert.Equal(t, "/tmp/2do-test/settings.yaml", cfg.SettingsPath())
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "2do"), config.DefaultConfigDir())
}

func TestProviderPaths(t *testing.T) {
	cfg := &config.Config{Dir: "/c"}
	assert.Equal(t, "/c/dropbox_client.json", cfg.ClientPath("dropbox"))
	assert.Equal(t, "/c/oauth_client.json", cfg.ClientPath("googledrive"))
	assert.Equal(t, "/c/token_dropbox.json", cfg.TokenPath("dropbox"))
}

func TestTokenLifecycle(t *testing.T) {
	cfg := &config.Config{Dir: filepath.Join(t.TempDir(), "nested")}
	require.NoError(t, cfg.EnsureDir())
	assert.False(t, cfg.HasToken("dropbox"))
	assert.False(t, cfg.HasClient("dropbox"))

	require.NoError(t, os.WriteFile(cfg.TokenPath("dropbox"), []byte("{}"), 0600))
	assert.True(t, cfg.HasToken("dropbox"))
	assert.False(t, cfg.HasToken("googledrive"))

	require.NoError(t, cfg.RemoveToken("dropbox"))
	assert.False(t, cfg.HasToken("dropbox"))
}
