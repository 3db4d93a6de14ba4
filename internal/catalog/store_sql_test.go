package catalog_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/kcse-scoreboard/internal/catalog"
	"github.com/mind-engage/kcse-scoreboard/internal/db"
)

func openTestDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), name) + "?_pragma=busy_timeout(5000)"
	h, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	return h
}

func TestSeedAndLoadSQLite(t *testing.T) {
	ctx := context.Background()
	h := openTestDB(t, "catalog.db")

	require.NoError(t, catalog.SeedSQL(ctx, h, catalog.KCSE, catalog.Default()))
	// seeding twice replaces rather than duplicates
	require.NoError(t, catalog.SeedSQL(ctx, h, catalog.KCSE, catalog.Default()))

	got, err := catalog.LoadSQL(ctx, h, catalog.KCSE)
	require.NoError(t, err)
	if diff := cmp.Diff(catalog.Default().Subjects(), got.Subjects()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	_, err = catalog.LoadSQL(ctx, h, "missing")
	require.ErrorIs(t, err, catalog.ErrSchemeNotFound)
}

func TestLoadSQLRejectsBrokenScale(t *testing.T) {
	ctx := context.Background()
	h := openTestDB(t, "broken.db")

	require.NoError(t, catalog.SeedSQL(ctx, h, catalog.KCSE, catalog.Default()))
	_, err := h.ExecContext(ctx,
		`UPDATE grade_bands SET max_mark=25 WHERE scheme=$1 AND subject_code='312' AND grade='D'`, catalog.KCSE)
	require.NoError(t, err)

	_, err = catalog.LoadSQL(ctx, h, catalog.KCSE)
	require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}
