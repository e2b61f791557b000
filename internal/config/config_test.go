package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, DefaultDatabaseLocation, cfg.DatabaseLocation)
	assert.Equal(t, DefaultAllowedOrigin, cfg.AllowedOrigin)
	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.Production())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvServiceAccount, "Zm9v")
	t.Setenv(EnvDBLocation, "europe-west")
	t.Setenv(EnvEnvironment, "production")

	cfg := FromEnv()

	assert.Equal(t, "Zm9v", cfg.ServiceAccount)
	assert.Equal(t, "europe-west", cfg.DatabaseLocation)
	assert.True(t, cfg.Production())
}

func TestLoad_FileWithEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fireliftd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"databaseLocation: asia-northeast\nallowedOrigin: https://app.example.com\n",
	), 0o600))

	t.Setenv(EnvDBLocation, "us-east")

	cfg, err := Load(path)
	require.NoError(t, err)

	// Environment wins over the file; untouched file values survive.
	assert.Equal(t, "us-east", cfg.DatabaseLocation)
	assert.Equal(t, "https://app.example.com", cfg.AllowedOrigin)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("numeric placement ids", func(t *testing.T) {
		cfg := FromEnv()
		cfg.ParentOrganization = "123456"
		cfg.ParentFolder = "789"
		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects non-numeric organization", func(t *testing.T) {
		cfg := FromEnv()
		cfg.ParentOrganization = "orgs/123"
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects unknown environment", func(t *testing.T) {
		cfg := FromEnv()
		cfg.Environment = "staging"
		require.Error(t, cfg.Validate())
	})
}
