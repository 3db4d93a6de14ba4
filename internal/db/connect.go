package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB holding grading schemes and ensures the schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:scoreboard.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/scoreboard?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS subjects (
  scheme TEXT NOT NULL,
  code TEXT NOT NULL,
  name TEXT NOT NULL,
  mandatory INTEGER NOT NULL DEFAULT 0,
  position INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (scheme, code)
);

CREATE TABLE IF NOT EXISTS grade_bands (
  scheme TEXT NOT NULL,
  subject_code TEXT NOT NULL,
  position INTEGER NOT NULL,
  min_mark REAL NOT NULL,
  max_mark REAL NOT NULL,
  grade TEXT NOT NULL,
  points INTEGER NOT NULL,
  PRIMARY KEY (scheme, subject_code, position)
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS subjects (
  scheme TEXT NOT NULL,
  code TEXT NOT NULL,
  name TEXT NOT NULL,
  mandatory INTEGER NOT NULL DEFAULT 0,
  position INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (scheme, code)
);

CREATE TABLE IF NOT EXISTS grade_bands (
  scheme TEXT NOT NULL,
  subject_code TEXT NOT NULL,
  position INTEGER NOT NULL,
  min_mark DOUBLE PRECISION NOT NULL,
  max_mark DOUBLE PRECISION NOT NULL,
  grade TEXT NOT NULL,
  points INTEGER NOT NULL,
  PRIMARY KEY (scheme, subject_code, position)
);
`
