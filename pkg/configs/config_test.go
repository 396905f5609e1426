package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	err := InitConfig(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestInitConfigFromEnvOnly(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/immovault")

	require.NoError(t, InitConfig(t.TempDir()))
	assert.Equal(t, "postgres://app:secret@db:5432/immovault", GetConfig().DB.GetDSN())
}

func TestInitConfigFromFile(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("db:\n  type: sqlite\n  database: vault\n"), 0o644))

	require.NoError(t, InitConfig(dir))
	assert.Equal(t, "SQLite", GetConfig().DB.GetDBType())
}
