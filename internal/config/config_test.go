package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverridesSubsetOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  walk_speed: 120\nwave:\n  base_count: 9\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 120.0, cfg.Player.WalkSpeed)
	require.Equal(t, 9, cfg.Wave.BaseCount)
	// untouched keys keep their defaults
	require.Equal(t, Default().Player.MaxHealth, cfg.Player.MaxHealth)
	require.Equal(t, Default().Enemy.AttackRadius, cfg.Enemy.AttackRadius)
}

func TestLoadMalformedFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player: [broken"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}
