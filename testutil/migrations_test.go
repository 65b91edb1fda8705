package testutil_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoleta-app/backend/migrations"
	"github.com/ecoleta-app/backend/testutil"
)

// TestMigrations is an integration test that verifies the full migration
// round-trip against a real Postgres database:
//
//  1. Apply all migrations (goose up).
//  2. Assert every expected table exists and the items catalog is seeded.
//  3. Roll back all migrations (goose reset).
//  4. Assert every table has been removed.
//
// The test is skipped automatically when TEST_DATABASE_URL is not set.
func TestMigrations(t *testing.T) {
	db := testutil.NewSQLDB(t)

	provider, err := goose.NewProvider(
		goose.DialectPostgres,
		db,
		migrations.FS,
	)
	require.NoError(t, err, "create goose provider")

	ctx := context.Background()

	// Another package's TestMain may have already applied migrations against
	// this shared test DB. Reset to version 0 first so this test is
	// self-contained and order-independent, whether run alone or as part of
	// the full suite.
	if _, err := provider.DownTo(ctx, 0); err != nil {
		t.Fatalf("TestMigrations: initial reset: %v", err)
	}

	results, err := provider.Up(ctx)
	require.NoError(t, err, "goose up")
	assert.NotEmpty(t, results, "expected at least one migration to be applied")

	// Verify all expected tables exist after applying migrations.
	for _, table := range []string{"items", "points", "point_items"} {
		assert.True(t, tableExists(t, db, table), "table %q should exist after goose up", table)
	}

	// The seed migration must populate the six-item catalog.
	var itemCount int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT count(*) FROM items").Scan(&itemCount))
	assert.Equal(t, 6, itemCount, "seed migration should insert six items")

	// Roll everything back and verify the tables are gone.
	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")

	for _, table := range []string{"items", "points", "point_items"} {
		assert.False(t, tableExists(t, db, table), "table %q should not exist after goose reset", table)
	}

	// Leave the schema applied for any tests that run after this one.
	_, err = provider.Up(ctx)
	require.NoError(t, err, "re-apply migrations")
}

// tableExists reports whether a table with the given name exists in the public schema.
func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()

	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)`

	var exists bool
	if err := db.QueryRow(q, name).Scan(&exists); err != nil {
		t.Fatalf("tableExists(%q): %v", name, err)
	}
	return exists
}
