package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/austincummings/mx/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := config.Load(filepath.Join(t.TempDir(), "mx.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.DefaultMaxSteps, c.MaxSteps)
	require.Empty(t, c.Entry)
}

func TestLoadDecodesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entry: main.mx\nmax_steps: 500\npredeclared: [foo, bar]\n"), 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "main.mx", c.Entry)
	require.Equal(t, 500, c.MaxSteps)
	require.Equal(t, []string{"foo", "bar"}, c.Predeclared)
}

func TestLoadEnvOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entry: main.mx\nmax_steps: 500\n"), 0o644))

	t.Setenv("MX_MAX_STEPS", "42")
	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 42, c.MaxSteps)
	require.Equal(t, "main.mx", c.Entry)
}
