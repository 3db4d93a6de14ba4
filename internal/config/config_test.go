package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"SCOREBOARD_LOG_LEVEL", "SCOREBOARD_CATALOG", "SCOREBOARD_SCHEME", "DB_DRIVER", "DB_DSN", "SCOREBOARD_FORMAT"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	assert.Equal(t, Config{
		LogLevel:     "info",
		Catalog:      CatalogBuiltin,
		Scheme:       "kcse",
		DBDriver:     "sqlite",
		ReportFormat: "text",
	}, cfg)
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("SCOREBOARD_CATALOG", "")
	t.Setenv("DB_DSN", "")
	os.Unsetenv("SCOREBOARD_CATALOG")
	os.Unsetenv("DB_DSN")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SCOREBOARD_CATALOG=SQL\nDB_DSN=file:test.db\n"), 0o600))

	cfg := Load(path)
	assert.Equal(t, CatalogSQL, cfg.Catalog)
	assert.Equal(t, "file:test.db", cfg.DBDSN)
}
