package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinishConfig_MissingPostgresSection(t *testing.T) {
	cfg := &Config{}

	err := finishConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestFinishConfig_AppliesDefaults(t *testing.T) {
	cfg := &Config{Postgres: &postgres.DBConn{}}

	err := finishConfig(cfg)

	require.NoError(t, err)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestNew_MissingPostgresSectionFailsLoad(t *testing.T) {
	dir := t.TempDir()
	yaml := "env:\n  env: test\nhttp:\n  port: 8080\nsecretKey:\n  access: test-secret\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Chdir(dir)

	cfg, err := New()

	// Must come back as a load error, not a panic at startup.
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "postgres")
}
