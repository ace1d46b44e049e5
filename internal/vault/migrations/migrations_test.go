package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "schema.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func objectExists(t *testing.T, db *sql.DB, typ, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type=? AND name=?`, typ, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestApply_CreatesTablesAndIndexes(t *testing.T) {
	db := openDB(t)

	n, err := Apply(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, tbl := range Tables {
		assert.True(t, objectExists(t, db, "table", tbl), "table %s", tbl)
	}
	for _, idx := range Indexes {
		assert.True(t, objectExists(t, db, "index", idx), "index %s", idx)
	}
	assert.True(t, objectExists(t, db, "table", "goose_db_version"))
}

func TestApply_IsIdempotentAndKeepsRows(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	_, err := Apply(ctx, db)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO jobs (id, title, created_at, updated_at) VALUES ('j1', 'Engineer', 'x', 'x')`)
	require.NoError(t, err)

	n, err := Apply(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	var title string
	require.NoError(t, db.QueryRow(`SELECT title FROM jobs WHERE id='j1'`).Scan(&title))
	assert.Equal(t, "Engineer", title)
}

func TestApply_OverPreexistingTables(t *testing.T) {
	db := openDB(t)

	// A file created by an older tool without goose bookkeeping.
	_, err := db.Exec(`CREATE TABLE jobs (
		id TEXT PRIMARY KEY, title TEXT NOT NULL, company TEXT NOT NULL, url TEXT,
		description TEXT, location TEXT, salary TEXT, requirements TEXT,
		stage TEXT DEFAULT 'saved', notes TEXT DEFAULT '', tags TEXT,
		applied_date TEXT, created_at TEXT NOT NULL, updated_at TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO jobs (id, title, company, created_at, updated_at) VALUES ('old', 't', 'c', 'x', 'x')`)
	require.NoError(t, err)

	_, err = Apply(context.Background(), db)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM jobs`).Scan(&n))
	assert.Equal(t, 1, n)
}

func columnExists(t *testing.T, db *sql.DB, table, column string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestApply_AddsCompaniesUpdatedAt(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	_, err := db.Exec(`CREATE TABLE companies (
		id TEXT PRIMARY KEY, name TEXT NOT NULL, domain TEXT, industry TEXT, size TEXT,
		funding_stage TEXT, rating REAL, location TEXT, website TEXT, notes TEXT,
		last_updated TEXT, created_at TEXT DEFAULT CURRENT_TIMESTAMP)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO companies (id, name, last_updated, created_at) VALUES
		('touched', 'Acme', '2024-03-01T10:00:00.123456', '2024-01-01 09:00:00'),
		('fresh', 'Initech', NULL, '2024-02-01 09:00:00')`)
	require.NoError(t, err)
	require.False(t, columnExists(t, db, "companies", "updated_at"))

	n, err := Apply(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.True(t, columnExists(t, db, "companies", "updated_at"))

	var touched, fresh string
	require.NoError(t, db.QueryRow(`SELECT updated_at FROM companies WHERE id='touched'`).Scan(&touched))
	require.NoError(t, db.QueryRow(`SELECT updated_at FROM companies WHERE id='fresh'`).Scan(&fresh))
	assert.Equal(t, "2024-03-01T10:00:00.123456", touched)
	assert.Equal(t, "2024-02-01 09:00:00", fresh)

	n, err = Apply(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestApply_CurrentSchemaKeepsCompaniesUpdatedAt(t *testing.T) {
	db := openDB(t)

	_, err := Apply(context.Background(), db)
	require.NoError(t, err)
	assert.True(t, columnExists(t, db, "companies", "updated_at"))
}
