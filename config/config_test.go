package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the test and restores it afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT", "CORS_ORIGINS",
		"DB_DRIVER", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_SSLMODE", "SQLITE_PATH")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "trackmygov.sqlite", cfg.SQLitePath)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/issues.db")
	t.Setenv("CORS_ORIGINS", "https://trackmygov.in, http://localhost:3000,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/issues.db", cfg.SQLitePath)
	assert.Equal(t, []string{"https://trackmygov.in", "http://localhost:3000"}, cfg.CORSOrigins())
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	assert.ErrorContains(t, err, "mysql")
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBUser:     "civic",
		DBPassword: "secret",
		DBName:     "issues",
		DBPort:     "5433",
		DBSSLMode:  "require",
	}
	assert.Equal(t, "host=db user=civic password=secret dbname=issues port=5433 sslmode=require", cfg.PostgresDSN())

	cfg.DatabaseURL = "postgres://civic@db/issues"
	assert.Equal(t, "postgres://civic@db/issues", cfg.PostgresDSN())
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?"+sqlitePragmas, SQLiteDSN(""))
	assert.Equal(t, "file:data/app.db?"+sqlitePragmas, SQLiteDSN("data/app.db"))
}

func TestInitDBSQLiteInMemory(t *testing.T) {
	db, err := InitDB(&Config{DBDriver: DriverSQLite})
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDB(db) })

	for _, table := range []string{"issues", "community_notes", "issue_upvotes"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex("issue_upvotes", "idx_issue_upvotes_issue_user"))
}

func TestLoadEmptySQLitePathIsInMemory(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.SQLitePath)
	assert.Equal(t, "file::memory:?"+sqlitePragmas, SQLiteDSN(cfg.SQLitePath))
}
