package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sketchsolve.toml")
	require.NoError(t, os.WriteFile(path, []byte(`epsilon = 0.01
log_level = "debug"
output_format = "table"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.01, cfg.Epsilon)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, Default().LogDir, cfg.LogDir, "unset fields keep the default")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.Epsilon = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.OutputFormat = "xml"
	assert.Error(t, cfg.Validate())
}
