package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type CatalogSource string

const (
	CatalogBuiltin CatalogSource = "builtin"
	CatalogSQL     CatalogSource = "sql"
)

type Config struct {
	LogLevel string

	// Where grading scales come from. "sql" reads the subjects and
	// grade_bands tables for Scheme.
	Catalog CatalogSource
	Scheme  string

	DBDriver string
	DBDSN    string

	ReportFormat string
}

// Load reads an optional .env file, then the environment.
func Load(files ...string) Config {
	// A missing .env is normal; the process environment still applies.
	_ = godotenv.Load(files...)
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		LogLevel:     envOr("SCOREBOARD_LOG_LEVEL", "info"),
		Catalog:      CatalogSource(strings.ToLower(envOr("SCOREBOARD_CATALOG", string(CatalogBuiltin)))),
		Scheme:       envOr("SCOREBOARD_SCHEME", "kcse"),
		DBDriver:     envOr("DB_DRIVER", "sqlite"),
		DBDSN:        envOr("DB_DSN", ""),
		ReportFormat: envOr("SCOREBOARD_FORMAT", "text"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
