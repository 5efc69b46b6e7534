package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app_name: nasadmin-test
server:
  host: 0.0.0.0
  port: 9090
client:
  base_url: http://nas.local:9090
  page_size: 25
  echo_count: true
  timeout: 5s
  breaker:
    enabled: true
    failure_ratio: 0.5
logger:
  level: 5
  format: json
  output: stdout
data:
  sqlite:
    source: "file::memory:?cache=shared"
  redis:
    addr: 127.0.0.1:6379
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "nasadmin-test", cfg.AppName)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, "http://nas.local:9090", cfg.Client.BaseURL)
	assert.Equal(t, 25, cfg.Client.PageSize)
	assert.True(t, cfg.Client.EchoCount)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
	assert.True(t, cfg.Client.Breaker.Enabled)
	assert.Equal(t, 0.5, cfg.Client.Breaker.FailureRatio)
	assert.Equal(t, uint32(3), cfg.Client.Breaker.MinRequests)
	assert.Equal(t, 5, cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "127.0.0.1:6379", cfg.Data.Redis.Addr)
	assert.Equal(t, 1.0, cfg.Observes.Tracer.SamplingRate)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "app_name: bare\n"))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Client.PageSize)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Client.Breaker.Enabled)
	assert.Equal(t, 4, cfg.Logger.Level)
	assert.Empty(t, cfg.Data.Redis.Addr)
}

func TestLoadConfigRejectsInvalidPageSize(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "client:\n  page_size: 0\n"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadURL(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "client:\n  base_url: not a url\n"))
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("NASADMIN_CLIENT_PAGE_SIZE", "50")
	cfg, err := LoadConfig(writeConfig(t, sample))
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Client.PageSize)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestProviders(t *testing.T) {
	assert.Nil(t, ProvideClientConfig(nil))
	cfg, err := LoadConfig(writeConfig(t, sample))
	require.NoError(t, err)
	assert.Same(t, cfg.Client, ProvideClientConfig(cfg))
	assert.Same(t, cfg.Data, ProvideDataConfig(cfg))
}
