package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.IP)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "memory", cfg.Storage.Type)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Empty(t, cfg.SubmissionID)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
ip = "127.0.0.1"
http_port = 8000
submission_id = "abc123"
log_level = "debug"
random_seed = 7

[storage]
type = "redis"
redis_url = "redis://cache:6379/1"

[session]
ttl = "30m"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.IP)
	assert.Equal(t, 8000, cfg.HTTPPort)
	assert.Equal(t, "abc123", cfg.SubmissionID)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, uint64(7), cfg.RandomSeed)
	assert.Equal(t, "redis", cfg.Storage.Type)
	assert.Equal(t, "redis://cache:6379/1", cfg.Storage.RedisURL)
	assert.Equal(t, 10, cfg.Storage.PoolSize)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
http_port = 8000
submission_id = "from-file"
`)
	t.Setenv("GRIDGAMES_HTTP_PORT", "9090")
	t.Setenv("GRIDGAMES_SUBMISSION_ID", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "from-env", cfg.SubmissionID)
}

func TestEnvironmentWithoutFile(t *testing.T) {
	t.Setenv("GRIDGAMES_STORAGE_TYPE", "redis")
	t.Setenv("GRIDGAMES_SESSION_TTL", "5m")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage.Type)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad port", `http_port = 70000`},
		{"bad storage", "[storage]\ntype = \"postgres\""},
		{"bad level", `log_level = "loud"`},
		{"bad ttl", "[session]\nttl = \"-1m\""},
		{"bad toml", `http_port = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestUsageListsVariables(t *testing.T) {
	usage := Usage()
	assert.Contains(t, usage, "GRIDGAMES_HTTP_PORT")
	assert.Contains(t, usage, "GRIDGAMES_SUBMISSION_ID")
}
