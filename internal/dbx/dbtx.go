// Package dbx holds the small database/sql helpers shared by the store and
// its repositories: the DBTX interface implemented by both *sql.DB and
// *sql.Tx, a transaction runner, and a scoped per-call connection.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
//
// Typical use:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    _, err := tx.ExecContext(ctx, "UPDATE ...")
//	    return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit tx: %w", cerr)
		}
	}()

	err = fn(ctx, tx)
	return err
}

// WithConn opens a dedicated single-connection handle for the duration of
// fn and always closes it afterwards, including on error and panic paths.
func WithConn(ctx context.Context, driver, dsn string, fn func(ctx context.Context, db *sql.DB) error) (err error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("open %s: %w", driver, err)
	}
	db.SetMaxOpenConns(1)

	defer func() {
		if cerr := db.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close: %w", cerr))
		}
	}()

	return fn(ctx, db)
}

// InTx combines WithConn and WithTx: one connection, one transaction, one call.
func InTx(ctx context.Context, driver, dsn string, fn func(ctx context.Context, tx DBTX) error) error {
	return WithConn(ctx, driver, dsn, func(ctx context.Context, db *sql.DB) error {
		return WithTx(ctx, db, nil, fn)
	})
}
