package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/localnerve/contextdb/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_MODE", "DB_TYPE", "DB_HOST", "DB_PORT", "DB_DATABASE", "DB_USER", "DB_PASSWORD", "DB_CONNECTION_LIMIT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := config.FromEnv()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, config.DefaultSQLitePath, cfg.DBDatabase)
	assert.Equal(t, 5, cfg.DBConnectionLimit)

	// sqlite needs no credentials
	require.NoError(t, cfg.Validate())
}

func TestValidateRequiresUserForServerDBs(t *testing.T) {
	cfg := config.FromEnv()
	cfg.DBType = "mysql"
	cfg.DBUser = ""
	require.Error(t, cfg.Validate())

	cfg.DBUser = "contextdb"
	require.NoError(t, cfg.Validate())

	cfg.DBDatabase = ""
	require.Error(t, cfg.Validate())
}

func TestLoadFileOverlaysEnvironment(t *testing.T) {
	t.Setenv("DB_TYPE", "mysql")
	t.Setenv("DB_USER", "envuser")
	t.Setenv("DB_DATABASE", "envdb")

	path := filepath.Join(t.TempDir(), "contextdb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_type: postgres\ndb_host: db.internal\n"), 0o644))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	// File wins over environment
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, "db.internal", cfg.DBHost)
	// Keys absent from the file keep environment values
	assert.Equal(t, "envuser", cfg.DBUser)
	assert.Equal(t, "envdb", cfg.DBDatabase)
}

func TestLoadFileMissingExplicitPath(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFileToleratesMissingDefault(t *testing.T) {
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_DATABASE", "./context.db")
	t.Chdir(t.TempDir())

	cfg, err := config.LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBType)
}
