package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "data/leveldb", cfg.LevelDB.Path)
	assert.Equal(t, 64, cfg.Cache.SizeMB)
	assert.Equal(t, time.Minute, cfg.Cache.TTL())
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL())
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  port: 9090\nleveldb:\n  path: /tmp/sybil\ndataset:\n  file: sybil_analysis_output.json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("SYBIL_LOG_LEVEL", "debug")
	t.Setenv("SYBIL_SESSION_TTL_SECONDS", "90")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/sybil", cfg.LevelDB.Path)
	assert.Equal(t, "sybil_analysis_output.json", cfg.Dataset.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 90*time.Second, cfg.Session.TTL())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
