package contacts

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

const selectContact = `SELECT id, name, company, COALESCE(position, ''), COALESCE(linkedin_url, ''),
	COALESCE(relationship, ''), COALESCE(connection_type, ''), COALESCE(warm_intro_potential, ''),
	COALESCE(last_contact, ''), COALESCE(notes, ''), created_at, updated_at
	FROM contacts`

// SQLiteRepository implements Repository over the contacts table using a DBTX.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Insert stores a fully built contact.
func (r *SQLiteRepository) Insert(ctx context.Context, c *models.Contact) error {
	query := `INSERT INTO contacts (id, name, company, position, linkedin_url, relationship,
			connection_type, warm_intro_potential, last_contact, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Company, c.Position, c.LinkedInURL, c.Relationship,
		c.ConnectionType, c.WarmIntroPotential, c.LastContact, c.Notes,
		models.FormatTime(c.CreatedAt), models.FormatTime(c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	return nil
}

// GetByID returns the contact with the given id, or nil if there is none.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	c, err := scan(r.db.QueryRowContext(ctx, selectContact+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact %s: %w", id, err)
	}
	return c, nil
}

// GetAll returns every row in list order; the result is never nil.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Contact, error) {
	rows, err := r.db.QueryContext(ctx, selectContact+` ORDER BY name ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select contacts: %w", err)
	}
	defer rows.Close()

	result := []models.Contact{}
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
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
func (r *SQLiteRepository) Update(ctx context.Context, id string, f models.ContactFields, now time.Time) (bool, error) {
	query, args, err := sq.Update("contacts").
		SetMap(changes(f)).
		Set("updated_at", sq.Expr("MAX(COALESCE(updated_at, ''), ?)", models.FormatTime(now))).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build contact update: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update contact %s: %w", id, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

// DeleteByID removes the row and reports whether it existed.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete contact %s: %w", id, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

func changes(f models.ContactFields) map[string]any {
	m := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			m[col] = *v
		}
	}
	set("name", f.Name)
	set("company", f.Company)
	set("position", f.Position)
	set("linkedin_url", f.LinkedInURL)
	set("relationship", f.Relationship)
	set("connection_type", f.ConnectionType)
	set("warm_intro_potential", f.WarmIntroPotential)
	set("last_contact", f.LastContact)
	set("notes", f.Notes)
	return m
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.Contact, error) {
	c := &models.Contact{}
	err := row.Scan(&c.ID, &c.Name, &c.Company, &c.Position, &c.LinkedInURL, &c.Relationship,
		&c.ConnectionType, &c.WarmIntroPotential, &c.LastContact, &c.Notes,
		models.ScanTime(&c.CreatedAt), models.ScanTime(&c.UpdatedAt))
	if err != nil {
		return nil, err
	}
	return c, nil
}
