package offers

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

const selectOffer = `SELECT id, COALESCE(job_id, ''), company, base_salary, COALESCE(bonus, ''),
	COALESCE(equity, ''), COALESCE(benefits, ''), COALESCE(start_date, ''),
	COALESCE(negotiation_notes, ''), status, created_at, updated_at
	FROM offers`

// SQLiteRepository implements Repository over the offers table using a DBTX.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Insert stores a fully built offer.
func (r *SQLiteRepository) Insert(ctx context.Context, o *models.Offer) error {
	query := `INSERT INTO offers (id, job_id, company, base_salary, bonus, equity, benefits,
			start_date, negotiation_notes, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID, o.JobID, o.Company, o.BaseSalary, o.Bonus, o.Equity, o.Benefits,
		o.StartDate, o.NegotiationNotes, o.Status,
		models.FormatTime(o.CreatedAt), models.FormatTime(o.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert offer: %w", err)
	}
	return nil
}

// GetByID returns the offer with the given id, or nil if there is none.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Offer, error) {
	o, err := scan(r.db.QueryRowContext(ctx, selectOffer+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get offer %s: %w", id, err)
	}
	return o, nil
}

// GetAll returns every row in list order; the result is never nil.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Offer, error) {
	rows, err := r.db.QueryContext(ctx, selectOffer+` ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select offers: %w", err)
	}
	defer rows.Close()

	result := []models.Offer{}
	for rows.Next() {
		o, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update writes the non-nil members of f and refreshes updated_at.
// It reports whether a row matched.
func (r *SQLiteRepository) Update(ctx context.Context, id string, f models.OfferFields, now time.Time) (bool, error) {
	query, args, err := sq.Update("offers").
		SetMap(changes(f)).
		Set("updated_at", sq.Expr("MAX(COALESCE(updated_at, ''), ?)", models.FormatTime(now))).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build offer update: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update offer %s: %w", id, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

// DeleteByID removes the row and reports whether it existed.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM offers WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete offer %s: %w", id, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

func changes(f models.OfferFields) map[string]any {
	m := map[string]any{}
	if f.JobID != nil {
		m["job_id"] = *f.JobID
	}
	if f.Company != nil {
		m["company"] = *f.Company
	}
	if f.BaseSalary != nil {
		m["base_salary"] = *f.BaseSalary
	}
	if f.Bonus != nil {
		m["bonus"] = *f.Bonus
	}
	if f.Equity != nil {
		m["equity"] = *f.Equity
	}
	if f.Benefits != nil {
		m["benefits"] = *f.Benefits
	}
	if f.StartDate != nil {
		m["start_date"] = *f.StartDate
	}
	if f.NegotiationNotes != nil {
		m["negotiation_notes"] = *f.NegotiationNotes
	}
	if f.Status != nil {
		m["status"] = *f.Status
	}
	return m
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.Offer, error) {
	o := &models.Offer{}
	err := row.Scan(&o.ID, &o.JobID, &o.Company, &o.BaseSalary, &o.Bonus, &o.Equity, &o.Benefits,
		&o.StartDate, &o.NegotiationNotes, &o.Status,
		models.ScanTime(&o.CreatedAt), models.ScanTime(&o.UpdatedAt))
	if err != nil {
		return nil, err
	}
	return o, nil
}
