package companies

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

const selectCompany = `SELECT id, name, COALESCE(domain, ''), COALESCE(industry, ''), COALESCE(size, ''),
	COALESCE(funding_stage, ''), rating, COALESCE(location, ''), COALESCE(website, ''),
	COALESCE(notes, ''), COALESCE(last_updated, created_at), created_at, updated_at
	FROM companies`

// SQLiteRepository implements Repository over the companies table using a DBTX.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Insert stores a fully built company.
func (r *SQLiteRepository) Insert(ctx context.Context, c *models.Company) error {
	query := `INSERT INTO companies (id, name, domain, industry, size, funding_stage, rating,
			location, website, notes, last_updated, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Domain, c.Industry, c.Size, c.FundingStage, c.Rating,
		c.Location, c.Website, c.Notes, models.FormatTime(c.LastUpdated),
		models.FormatTime(c.CreatedAt), models.FormatTime(c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert company: %w", err)
	}
	return nil
}

// GetByID returns the company with the given id, or nil if there is none.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	c, err := scan(r.db.QueryRowContext(ctx, selectCompany+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company %s: %w", id, err)
	}
	return c, nil
}

// GetAll returns every row in list order; the result is never nil.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Company, error) {
	rows, err := r.db.QueryContext(ctx, selectCompany+` ORDER BY name ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select companies: %w", err)
	}
	defer rows.Close()

	result := []models.Company{}
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update writes the non-nil members of f and refreshes updated_at.
// It reports whether a row matched.
func (r *SQLiteRepository) Update(ctx context.Context, id string, f models.CompanyFields, now time.Time) (bool, error) {
	stamp := sq.Expr("MAX(COALESCE(updated_at, ''), ?)", models.FormatTime(now))
	query, args, err := sq.Update("companies").
		SetMap(changes(f)).
		Set("last_updated", stamp).
		Set("updated_at", stamp).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build company update: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update company %s: %w", id, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

// DeleteByID removes the row and reports whether it existed.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete company %s: %w", id, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

func changes(f models.CompanyFields) map[string]any {
	m := map[string]any{}
	if f.Name != nil {
		m["name"] = *f.Name
	}
	if f.Domain != nil {
		m["domain"] = *f.Domain
	}
	if f.Industry != nil {
		m["industry"] = *f.Industry
	}
	if f.Size != nil {
		m["size"] = *f.Size
	}
	if f.FundingStage != nil {
		m["funding_stage"] = *f.FundingStage
	}
	if f.Rating != nil {
		m["rating"] = *f.Rating
	}
	if f.Location != nil {
		m["location"] = *f.Location
	}
	if f.Website != nil {
		m["website"] = *f.Website
	}
	if f.Notes != nil {
		m["notes"] = *f.Notes
	}
	return m
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.Company, error) {
	c := &models.Company{}
	err := row.Scan(&c.ID, &c.Name, &c.Domain, &c.Industry, &c.Size, &c.FundingStage, &c.Rating,
		&c.Location, &c.Website, &c.Notes, models.ScanTime(&c.LastUpdated),
		models.ScanTime(&c.CreatedAt), models.ScanTime(&c.UpdatedAt))
	if err != nil {
		return nil, err
	}
	return c, nil
}
