// Package migrations embeds the record store schema and applies it with
// goose. The base schema is CREATE ... IF NOT EXISTS, so applying it to a
// file that already holds the tables leaves existing rows untouched; later
// steps inspect the table before altering it.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var Migrations embed.FS

// Tables lists the tables created by the schema, in creation order.
var Tables = []string{"jobs", "companies", "contacts", "offers", "job_alerts", "interview_sessions"}

// Indexes lists the secondary indexes created by the schema.
var Indexes = []string{"idx_jobs_company", "idx_jobs_stage", "idx_companies_name", "idx_offers_company"}

// Apply brings db up to the latest schema version and returns how many
// migrations were applied (0 when the schema was already current).
func Apply(ctx context.Context, db *sql.DB) (int, error) {
	p, err := goose.NewProvider(goose.DialectSQLite3, db, Migrations,
		goose.WithGoMigrations(companiesUpdatedAt()),
	)
	if err != nil {
		return 0, fmt.Errorf("goose provider: %w", err)
	}

	res, err := p.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}
	return len(res), nil
}
