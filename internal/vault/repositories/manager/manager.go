package manager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/wickit/internal/dbx"
	"github.com/dmitrijs2005/wickit/internal/vault/repositories/alerts"
	"github.com/dmitrijs2005/wickit/internal/vault/repositories/companies"
	"github.com/dmitrijs2005/wickit/internal/vault/repositories/contacts"
	"github.com/dmitrijs2005/wickit/internal/vault/repositories/jobs"
	"github.com/dmitrijs2005/wickit/internal/vault/repositories/offers"
	"github.com/dmitrijs2005/wickit/internal/vault/repositories/sessions"
)

// RepositoryManager vends per-table repositories bound to a DBTX and
// applies the schema.
type RepositoryManager interface {
	// RunMigrations applies the schema and returns the number of newly
	// applied migration files.
	RunMigrations(ctx context.Context, db *sql.DB) (int, error)
	Jobs(db dbx.DBTX) jobs.Repository
	Companies(db dbx.DBTX) companies.Repository
	Contacts(db dbx.DBTX) contacts.Repository
	Offers(db dbx.DBTX) offers.Repository
	Alerts(db dbx.DBTX) alerts.Repository
	Sessions(db dbx.DBTX) sessions.Repository
}
