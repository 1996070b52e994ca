package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Otel.Enabled)
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "person-api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
store:
  driver: sqlite
  sqlite_path: from-file.db
postgres:
  host: file-host
http:
  rate_limit_rps: 5
  shutdown_timeout: 3s
`), 0o600))

	t.Setenv("POSTGRES_HOST", "env-host")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("METRICS_ENABLED", "false")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("port", "8080", "")
	flags.String("store-driver", "", "")
	flags.String("sqlite-path", "", "")
	require.NoError(t, flags.Parse([]string{"--port", "9100"}))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port, "explicit flag wins")
	assert.Equal(t, "sqlite", cfg.Store.Driver, "unset flags do not override the file")
	assert.Equal(t, "from-file.db", cfg.Store.SQLitePath)
	assert.Equal(t, "env-host", cfg.Postgres.Host, "env wins over file")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSAllowOrigins)
	assert.Equal(t, 5.0, cfg.HTTP.RateLimitRPS)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadConfigSplitsOriginList(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example,")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSAllowOrigins)
}

func TestEnvValueIgnoresUnknownVariables(t *testing.T) {
	key, _ := envValue("HOME", "/root")
	assert.Empty(t, key)

	key, val := envValue("POSTGRES_HOST", "db")
	assert.Equal(t, "postgres.host", key)
	assert.Equal(t, "db", val)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mysql")
	_, err := LoadConfig("", nil)
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}
