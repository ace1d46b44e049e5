package jobs

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

const selectJob = `SELECT id, title, company, COALESCE(url, ''), COALESCE(description, ''),
	COALESCE(location, ''), COALESCE(salary, ''), requirements, stage, COALESCE(notes, ''),
	tags, COALESCE(applied_date, ''), created_at, updated_at
	FROM jobs`

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Insert stores a fully built job.
func (r *SQLiteRepository) Insert(ctx context.Context, j *models.Job) error {
	query := `INSERT INTO jobs (id, title, company, url, description, location, salary,
			requirements, stage, notes, tags, applied_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		j.ID, j.Title, j.Company, j.URL, j.Description, j.Location, j.Salary,
		models.StringList(j.Requirements), j.Stage, j.Notes, models.StringList(j.Tags), j.AppliedDate,
		models.FormatTime(j.CreatedAt), models.FormatTime(j.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}
	return nil
}

// GetByID returns the job with the given id, or nil if there is none.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	j, err := scan(r.db.QueryRowContext(ctx, selectJob+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}
	return j, nil
}

// GetAll returns every job, newest first; the result is never nil.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Job, error) {
	rows, err := r.db.QueryContext(ctx, selectJob+` ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select jobs: %w", err)
	}
	defer rows.Close()

	result := []models.Job{}
	for rows.Next() {
		j, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		result = append(result, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update writes the non-nil members of f and refreshes updated_at.
// It reports whether a row matched.
func (r *SQLiteRepository) Update(ctx context.Context, id string, f models.JobFields, now time.Time) (bool, error) {
	query, args, err := sq.Update("jobs").
		SetMap(changes(f)).
		Set("updated_at", sq.Expr("MAX(COALESCE(updated_at, ''), ?)", models.FormatTime(now))).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build job update: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update job %s: %w", id, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

// DeleteByID removes the row and reports whether it existed.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job %s: %w", id, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

// changes maps the supplied fields to their columns.
func changes(f models.JobFields) map[string]any {
	m := map[string]any{}
	if f.Title != nil {
		m["title"] = *f.Title
	}
	if f.Company != nil {
		m["company"] = *f.Company
	}
	if f.URL != nil {
		m["url"] = *f.URL
	}
	if f.Description != nil {
		m["description"] = *f.Description
	}
	if f.Location != nil {
		m["location"] = *f.Location
	}
	if f.Salary != nil {
		m["salary"] = *f.Salary
	}
	if f.Requirements != nil {
		m["requirements"] = models.StringList(*f.Requirements)
	}
	if f.Stage != nil {
		m["stage"] = *f.Stage
	}
	if f.Notes != nil {
		m["notes"] = *f.Notes
	}
	if f.Tags != nil {
		m["tags"] = models.StringList(*f.Tags)
	}
	if f.AppliedDate != nil {
		m["applied_date"] = *f.AppliedDate
	}
	return m
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.Job, error) {
	j := &models.Job{}
	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.URL, &j.Description, &j.Location, &j.Salary,
		models.ScanList(&j.Requirements), &j.Stage, &j.Notes, models.ScanList(&j.Tags), &j.AppliedDate,
		models.ScanTime(&j.CreatedAt), models.ScanTime(&j.UpdatedAt))
	if err != nil {
		return nil, err
	}
	return j, nil
}
