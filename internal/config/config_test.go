package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
grid:
  file: maze.txt
search:
  mode: ALL
  debug_level: 1
server:
  addr: localhost:9090
  read_timeout: 2s
log:
  level: debug
  format: json
metrics:
  enabled: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "maze.txt", cfg.Grid.File)
	assert.Equal(t, "ALL", cfg.Search.Mode)
	assert.Equal(t, 1, cfg.Search.DebugLevel)
	assert.Equal(t, "localhost:9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "search:\n  mode: BFS\n")
	t.Setenv(EnvGridFile, "env.txt")
	t.Setenv(EnvSearchMode, "DFS")
	t.Setenv(EnvServerAddr, ":7070")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvMetricsEnabled, "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env.txt", cfg.Grid.File)
	assert.Equal(t, "DFS", cfg.Search.Mode)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadNormalizesSearchMode(t *testing.T) {
	t.Setenv(EnvSearchMode, "astar")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "A*", cfg.Search.Mode)

	cfg, err = Load(writeConfig(t, "search:\n  mode: bfs\n"))
	require.NoError(t, err)
	assert.Equal(t, "A*", cfg.Search.Mode, "environment wins over the file")

	os.Unsetenv(EnvSearchMode)
	cfg, err = Load(writeConfig(t, "search:\n  mode: bfs\n"))
	require.NoError(t, err)
	assert.Equal(t, "BFS", cfg.Search.Mode)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"mode", "search:\n  mode: dijkstra\n"},
		{"empty mode", "search:\n  mode: \"\"\n"},
		{"debug level", "search:\n  debug_level: 3\n"},
		{"log level", "log:\n  level: verbose\n"},
		{"log format", "log:\n  format: xml\n"},
		{"addr", "server:\n  addr: nope\n"},
		{"timeout", "server:\n  shutdown_timeout: 0s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			var validationErrors validator.ValidationErrors
			assert.ErrorAs(t, err, &validationErrors)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, "search: [\n"))
	assert.ErrorContains(t, err, "failed to parse the config file")

	t.Setenv(EnvMetricsEnabled, "maybe")
	_, err = Load("")
	assert.ErrorContains(t, err, EnvMetricsEnabled)
}
