// Package manager provides a concrete RepositoryManager for SQLite,
// wiring together repository constructors and the embedded schema.
package manager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/wickit/internal/dbx"
	"github.com/dmitrijs2005/wickit/internal/vault/migrations"
	"github.com/dmitrijs2005/wickit/internal/vault/repositories/alerts"
	"github.com/dmitrijs2005/wickit/internal/vault/repositories/companies"
	"github.com/dmitrijs2005/wickit/internal/vault/repositories/contacts"
	"github.com/dmitrijs2005/wickit/internal/vault/repositories/jobs"
	"github.com/dmitrijs2005/wickit/internal/vault/repositories/offers"
	"github.com/dmitrijs2005/wickit/internal/vault/repositories/sessions"
)

// SQLiteRepositoryManager vends SQLite-backed repositories bound to a DBTX.
type SQLiteRepositoryManager struct{}

// NewSQLiteRepositoryManager constructs a SQLite-backed RepositoryManager.
func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

// applySchema is a seam for testing migrations.Apply.
var applySchema = migrations.Apply

// RunMigrations applies the embedded schema to db.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) (int, error) {
	return applySchema(ctx, db)
}

// Jobs returns a jobs.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Jobs(db dbx.DBTX) jobs.Repository {
	return jobs.NewSQLiteRepository(db)
}

// Companies returns a companies.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Companies(db dbx.DBTX) companies.Repository {
	return companies.NewSQLiteRepository(db)
}

// Contacts returns a contacts.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Contacts(db dbx.DBTX) contacts.Repository {
	return contacts.NewSQLiteRepository(db)
}

// Offers returns an offers.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Offers(db dbx.DBTX) offers.Repository {
	return offers.NewSQLiteRepository(db)
}

// Alerts returns an alerts.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Alerts(db dbx.DBTX) alerts.Repository {
	return alerts.NewSQLiteRepository(db)
}

// Sessions returns a sessions.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewSQLiteRepository(db)
}
