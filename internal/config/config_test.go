package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.validate())
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 200.0, cfg.Game.WalkMillisPerTile)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
window:
  width: 800
  height: 600
  title: Test
world:
  seed: 99
  width: 32
  height: 32
  buildings: 2
  pools: 1
game:
  walk_millis_per_tile: 120
audio: false
log_level: debug
`), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, int64(99), cfg.World.Seed)
	assert.Equal(t, 120.0, cfg.Game.WalkMillisPerTile)
	assert.False(t, cfg.Audio)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("window:\n  width: -5\n"), 0o644))
	_, err := Load(p)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("window: ["), 0o644))
	_, err := Load(p)
	assert.Error(t, err)
}
