package alerts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/wickit/internal/dbx"
	"github.com/dmitrijs2005/wickit/internal/vault/models"
)

const (
	selectAlert = `SELECT id, name, keywords, COALESCE(location, ''), frequency, is_active,
	last_run, created_at, updated_at
	FROM job_alerts`

	touch = `updated_at = MAX(COALESCE(updated_at, ''), ?)`
)

// SQLiteRepository implements Repository over the job_alerts table using a DBTX.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Insert stores a fully built job alert.
func (r *SQLiteRepository) Insert(ctx context.Context, a *models.JobAlert) error {
	query := `INSERT INTO job_alerts (id, name, keywords, location, frequency, is_active,
			last_run, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.Name, a.Keywords, a.Location, a.Frequency, a.IsActive,
		models.NullTime(a.LastRun), models.FormatTime(a.CreatedAt), models.FormatTime(a.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert job alert: %w", err)
	}
	return nil
}

// GetByID returns the job alert with the given id, or nil if there is none.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.JobAlert, error) {
	a, err := scan(r.db.QueryRowContext(ctx, selectAlert+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job alert %s: %w", id, err)
	}
	return a, nil
}

// GetAll returns every row in list order; the result is never nil.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.JobAlert, error) {
	rows, err := r.db.QueryContext(ctx, selectAlert+` ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select job alerts: %w", err)
	}
	defer rows.Close()

	result := []models.JobAlert{}
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job alert: %w", err)
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update writes the non-nil members of f and refreshes updated_at.
// It reports whether a row matched.
func (r *SQLiteRepository) Update(ctx context.Context, id string, f models.JobAlertFields, now time.Time) (bool, error) {
	query, args, err := sq.Update("job_alerts").
		SetMap(changes(f)).
		Set("updated_at", sq.Expr("MAX(COALESCE(updated_at, ''), ?)", models.FormatTime(now))).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build job alert update: %w", err)
	}
	return r.exec(ctx, "update", id, query, args...)
}

// Toggle flips is_active and reports whether a row matched.
func (r *SQLiteRepository) Toggle(ctx context.Context, id string, now time.Time) (bool, error) {
	query := `UPDATE job_alerts SET is_active = NOT is_active, ` + touch + ` WHERE id = ?`
	return r.exec(ctx, "toggle", id, query, models.FormatTime(now), id)
}

// MarkRun sets last_run to now and reports whether a row matched.
func (r *SQLiteRepository) MarkRun(ctx context.Context, id string, now time.Time) (bool, error) {
	stamp := models.FormatTime(now)
	query := `UPDATE job_alerts SET last_run = ?, ` + touch + ` WHERE id = ?`
	return r.exec(ctx, "mark run of", id, query, stamp, stamp, id)
}

// DeleteByID removes the row and reports whether it existed.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	return r.exec(ctx, "delete", id, `DELETE FROM job_alerts WHERE id = ?`, id)
}

func (r *SQLiteRepository) exec(ctx context.Context, verb, id, query string, args ...any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to %s job alert %s: %w", verb, id, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

func changes(f models.JobAlertFields) map[string]any {
	m := map[string]any{}
	if f.Name != nil {
		m["name"] = *f.Name
	}
	if f.Keywords != nil {
		m["keywords"] = *f.Keywords
	}
	if f.Location != nil {
		m["location"] = *f.Location
	}
	if f.Frequency != nil {
		m["frequency"] = *f.Frequency
	}
	if f.IsActive != nil {
		m["is_active"] = *f.IsActive
	}
	if f.LastRun != nil {
		m["last_run"] = models.NullTime(f.LastRun)
	}
	return m
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.JobAlert, error) {
	a := &models.JobAlert{}
	err := row.Scan(&a.ID, &a.Name, &a.Keywords, &a.Location, &a.Frequency, &a.IsActive,
		models.ScanNullTime(&a.LastRun), models.ScanTime(&a.CreatedAt), models.ScanTime(&a.UpdatedAt))
	if err != nil {
		return nil, err
	}
	return a, nil
}
