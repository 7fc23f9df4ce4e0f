package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	assert.Equal(t, "react-icons.json", v.GetString("catalog.path"))
	assert.Equal(t, "", v.GetString("output.path"))
	assert.True(t, v.GetBool("features.enabled"))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icongen.yaml")
	content := `
catalog:
  path: custom/icons.yaml
output:
  path: src/icon/generated.rs
features:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom/icons.yaml", cfg.Catalog.Path)
	assert.Equal(t, "src/icon/generated.rs", cfg.Output.Path)
	assert.False(t, cfg.Features.Enabled)
}

func TestLoadFromFilePartialFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icongen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog:\n  path: only.json\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "only.json", cfg.Catalog.Path)
	assert.True(t, cfg.Features.Enabled, "unset keys keep their defaults")
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadCachesAndReset(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)

	again, err := Load()
	require.NoError(t, err)
	assert.Same(t, cfg, again, "Load returns the cached config until Reset")

	Reset()
	fresh, err := Load()
	require.NoError(t, err)
	assert.NotSame(t, cfg, fresh)
}
