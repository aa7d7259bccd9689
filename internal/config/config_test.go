package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TRO_KEY", "TRO_TOKEN", "TRELLO_API_KEY", "TRELLO_API_TOKEN", "TRO_HOST", "TRO_EDITOR", "TRO_WATCH"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultRateLimit, cfg.RateLimit)
	assert.False(t, cfg.Watch)
	assert.Empty(t, cfg.Path)
}

func TestLoad_ReadsFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "host: http://localhost:9999\nkey: k1\ntoken: t1\neditor: nano\ncache_ttl: 1m\nwatch: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.Host)
	assert.Equal(t, "k1", cfg.Key)
	assert.Equal(t, "t1", cfg.Token)
	assert.Equal(t, "nano", cfg.Editor)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.Watch)
	assert.Equal(t, path, cfg.Path)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key: file-key\ntoken: file-token\n"), 0o600))

	t.Setenv("TRELLO_API_KEY", "env-key")
	t.Setenv("TRO_TOKEN", "env-token")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Key)
	assert.Equal(t, "env-token", cfg.Token)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Host: DefaultHost}
	assert.ErrorIs(t, cfg.Validate(), ErrMissingCredentials)

	cfg.Key, cfg.Token = "k", "t"
	assert.NoError(t, cfg.Validate())

	cfg.Host = ""
	assert.Error(t, cfg.Validate())
}

func TestInit_WritesTemplateOnce(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	written, err := Init(path)
	require.NoError(t, err)
	assert.True(t, written)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)

	written, err = Init(path)
	require.NoError(t, err)
	assert.False(t, written)
}

func TestDir_UsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/tro", dir)
}
