// Package vault is the local record store: one SQLite file per product
// holding jobs, companies, contacts, offers, job alerts and interview
// sessions.
//
// A Vault keeps no open handles. Every operation opens its own
// connection, runs inside a single transaction and closes the connection
// before returning, so a Vault is safe for concurrent use and concurrent
// writers are serialized by the engine's lock.
package vault

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/wickit/internal/common"
	"github.com/dmitrijs2005/wickit/internal/config"
	"github.com/dmitrijs2005/wickit/internal/datadir"
	"github.com/dmitrijs2005/wickit/internal/dbx"
	"github.com/dmitrijs2005/wickit/internal/logging"
	"github.com/dmitrijs2005/wickit/internal/vault/repositories/manager"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// Vault is the record store handle. It holds only the database location,
// a logger and a clock.
type Vault struct {
	path        string
	dsn         string
	repomanager manager.RepositoryManager
	logger      logging.Logger
	clock       clockwork.Clock
}

// Option customizes a Vault in Open.
type Option func(*Vault)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(v *Vault) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithClock replaces the wall clock used for created_at, updated_at and
// last_run stamps.
func WithClock(c clockwork.Clock) Option {
	return func(v *Vault) {
		if c != nil {
			v.clock = c
		}
	}
}

// Open resolves the product's storage root, makes sure the database file
// carries the current schema and returns a ready Vault. A nil cfg means
// config.Default().
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*Vault, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("vault: invalid config: %w", err)
	}

	root, err := datadir.ResolveStorageRoot(cfg.DataHome, cfg.Product)
	if err != nil {
		return nil, &common.StorageError{Op: "open", Err: err}
	}

	path := filepath.Join(root, cfg.DBFile)
	v := &Vault{
		path:        path,
		dsn:         DSN(path, cfg.BusyTimeout),
		repomanager: manager.NewSQLiteRepositoryManager(),
		logger:      logging.Discard(),
		clock:       clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(v)
	}

	err = dbx.WithConn(ctx, driverName, v.dsn, func(ctx context.Context, db *sql.DB) error {
		n, err := v.repomanager.RunMigrations(ctx, db)
		if err != nil {
			return err
		}
		v.logger.Info(ctx, "schema applied", "path", path, "migrations", n)
		return nil
	})
	if err != nil {
		v.logger.Error(ctx, "vault open failed", "path", path, "err", err)
		return nil, &common.StorageError{Op: "open", Err: err}
	}
	return v, nil
}

// Path returns the database file location.
func (v *Vault) Path() string {
	return v.path
}

// DSN builds the driver data source name for the database file at path as
// a file: URI, so path characters such as '?' and '#' are escaped.
// Writers take the lock at BEGIN and wait up to busyTimeout for it.
func DSN(path string, busyTimeout time.Duration) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{
		Scheme:   "file",
		Path:     p,
		RawQuery: fmt.Sprintf("_pragma=busy_timeout(%d)&_txlock=immediate", busyTimeout.Milliseconds()),
	}
	return u.String()
}

func (v *Vault) now() time.Time {
	return v.clock.Now().UTC()
}

func newID() string {
	return uuid.NewString()
}

// query runs fn in its own connection and transaction. Engine failures
// come back as *common.StorageError tagged with op.
func query[T any](ctx context.Context, v *Vault, op string, fn func(ctx context.Context, tx dbx.DBTX) (T, error)) (T, error) {
	var out T
	v.logger.Debug(ctx, "vault operation", "op", op)

	err := dbx.InTx(ctx, driverName, v.dsn, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		out, err = fn(ctx, tx)
		return err
	})
	if err == nil {
		return out, nil
	}

	var zero T
	if errors.Is(err, common.ErrNotFound) {
		return zero, err
	}
	v.logger.Error(ctx, "vault operation failed", "op", op, "err", err)
	return zero, &common.StorageError{Op: op, Err: err}
}
