package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

// companiesUpdatedAt brings companies tables created without an updated_at
// column in line with the rest of the schema and backfills it.
func companiesUpdatedAt() *goose.Migration {
	return goose.NewGoMigration(2,
		&goose.GoFunc{RunTx: addCompaniesUpdatedAt, Mode: goose.TransactionEnabled},
		nil,
	)
}

func addCompaniesUpdatedAt(ctx context.Context, tx *sql.Tx) error {
	ok, err := hasColumn(ctx, tx, "companies", "updated_at")
	if err != nil {
		return err
	}
	if !ok {
		if _, err := tx.ExecContext(ctx, `ALTER TABLE companies ADD COLUMN updated_at TEXT`); err != nil {
			return fmt.Errorf("add companies.updated_at: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `UPDATE companies
		SET updated_at = COALESCE(last_updated, created_at, '')
		WHERE updated_at IS NULL`)
	if err != nil {
		return fmt.Errorf("backfill companies.updated_at: %w", err)
	}
	return nil
}

func hasColumn(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	var n int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("inspect %s: %w", table, err)
	}
	return n > 0, nil
}
