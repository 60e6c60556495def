package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "backtrack", cfg.Solver.Engine)
	assert.Equal(t, 4, cfg.Solver.Conn)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
addr: ":9090"
log_level: debug
solver:
  engine: parallel
  conn: 8
  max_nodes: 100000
  workers: 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "./data", cfg.DataDir) // untouched keys keep defaults
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "parallel", cfg.Solver.Engine)
	assert.Equal(t, 8, cfg.Solver.Conn)
	assert.Equal(t, 100000, cfg.Solver.MaxNodes)
	assert.Equal(t, 3, cfg.Solver.Workers)
}

func TestLoadRejectsBadConn(t *testing.T) {
	path := writeFile(t, "solver:\n  conn: 6\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeFile(t, "addr: [unterminated\n")
	_, err := Load(path)
	assert.Error(t, err)
}
