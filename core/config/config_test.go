package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 20, cfg.Server.UploadLimitMB)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "inventario", cfg.Storage.Bucket)
	assert.Equal(t, "http", cfg.Reference.Kind)
	assert.Equal(t, "inventario.xlsx", cfg.Reference.Object)
	assert.Equal(t, 30, cfg.Reference.TimeoutSeconds)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REFERENCE_KIND", "storage")
	t.Setenv("REFERENCE_VERSION_ID", "v7")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "storage", cfg.Reference.Kind)
	assert.Equal(t, "v7", cfg.Reference.VersionID)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "REFERENCE_URL=https://example.com/inventario.xlsx\nLOG_FORMAT=console\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("REFERENCE_URL")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/inventario.xlsx", cfg.Reference.URL)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_InvalidReferenceKind(t *testing.T) {
	t.Setenv("REFERENCE_KIND", "ftp")

	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
