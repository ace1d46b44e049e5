package vault

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/wickit/internal/vault/models"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pythonSchema is the layout written by the earlier Python store: no
// goose bookkeeping, nullable timestamps and no companies.updated_at.
const pythonSchema = `
CREATE TABLE jobs (
    id TEXT PRIMARY KEY, title TEXT NOT NULL, company TEXT NOT NULL, url TEXT,
    description TEXT, location TEXT, salary TEXT, requirements TEXT,
    stage TEXT DEFAULT 'saved', notes TEXT DEFAULT '', tags TEXT, applied_date TEXT,
    created_at TEXT NOT NULL, updated_at TEXT NOT NULL);
CREATE TABLE companies (
    id TEXT PRIMARY KEY, name TEXT NOT NULL, domain TEXT, industry TEXT, size TEXT,
    funding_stage TEXT, rating REAL, location TEXT, website TEXT, notes TEXT,
    last_updated TEXT, created_at TEXT DEFAULT CURRENT_TIMESTAMP);
CREATE TABLE contacts (
    id TEXT PRIMARY KEY, name TEXT NOT NULL, company TEXT NOT NULL, position TEXT,
    linkedin_url TEXT, relationship TEXT, connection_type TEXT,
    warm_intro_potential TEXT, last_contact TEXT, notes TEXT,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP, updated_at TEXT DEFAULT CURRENT_TIMESTAMP);
CREATE TABLE offers (
    id TEXT PRIMARY KEY, job_id TEXT, company TEXT NOT NULL, base_salary INTEGER,
    bonus TEXT, equity TEXT, benefits TEXT, start_date TEXT, negotiation_notes TEXT,
    status TEXT DEFAULT 'pending',
    created_at TEXT DEFAULT CURRENT_TIMESTAMP, updated_at TEXT DEFAULT CURRENT_TIMESTAMP);
CREATE TABLE job_alerts (
    id TEXT PRIMARY KEY, name TEXT NOT NULL, keywords TEXT NOT NULL, location TEXT,
    frequency TEXT DEFAULT 'daily', is_active BOOLEAN DEFAULT 1, last_run TEXT,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP, updated_at TEXT DEFAULT CURRENT_TIMESTAMP);
CREATE TABLE interview_sessions (
    id TEXT PRIMARY KEY, company TEXT NOT NULL, role TEXT NOT NULL,
    category TEXT DEFAULT 'behavioral', questions TEXT, answers TEXT, feedback TEXT,
    score INTEGER,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP, updated_at TEXT DEFAULT CURRENT_TIMESTAMP);
INSERT INTO companies (id, name, rating, last_updated, created_at)
    VALUES ('legacy-co', 'Globex', 4.0, '2024-03-01T10:00:00.123456', '2024-01-01 09:00:00');
INSERT INTO contacts (id, name, company, created_at, updated_at)
    VALUES ('legacy-ct', 'Hank', 'Globex', '2024-01-02 09:00:00', '2024-01-02 09:00:00');
`

func seedPythonStore(t *testing.T, dataHome string) {
	t.Helper()
	dir := filepath.Join(dataHome, ".jobforge")
	require.NoError(t, os.MkdirAll(dir, 0o700))

	db, err := sql.Open(driverName, filepath.Join(dir, "jobforge.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(pythonSchema)
	require.NoError(t, err)
}

func TestOpen_PythonStoreKeepsCompaniesUsable(t *testing.T) {
	ctx := context.Background()
	cfg := newConfig(t)
	seedPythonStore(t, cfg.DataHome)

	v, err := Open(ctx, cfg, WithClock(clockwork.NewFakeClockAt(t0)))
	require.NoError(t, err)

	companies, err := v.ListCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	legacy := companies[0]
	assert.Equal(t, "Globex", legacy.Name)
	stamp := time.Date(2024, 3, 1, 10, 0, 0, 123456000, time.UTC)
	assert.Equal(t, stamp, legacy.UpdatedAt)
	assert.Equal(t, stamp, legacy.LastUpdated)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), legacy.CreatedAt)

	updated, err := v.UpdateCompany(ctx, "legacy-co", models.CompanyFields{Notes: models.Ptr("still hiring")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "still hiring", updated.Notes)
	assert.Equal(t, t0, updated.UpdatedAt)

	created, err := v.CreateCompany(ctx, models.CompanyFields{Name: models.Ptr("Acme")})
	require.NoError(t, err)
	got, err := v.GetCompany(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	contacts, err := v.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Hank", contacts[0].Name)

	again, err := Open(ctx, cfg)
	require.NoError(t, err)
	companies, err = again.ListCompanies(ctx)
	require.NoError(t, err)
	assert.Len(t, companies, 2)
}
