package sessions

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

const selectSession = `SELECT id, company, role, category, questions, answers,
	COALESCE(feedback, ''), score, created_at, updated_at
	FROM interview_sessions`

// SQLiteRepository stores interview sessions; questions and answers are
// JSON-encoded list columns.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Insert stores a fully built interview session.
func (r *SQLiteRepository) Insert(ctx context.Context, s *models.InterviewSession) error {
	query := `INSERT INTO interview_sessions (id, company, role, category, questions, answers,
			feedback, score, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Company, s.Role, s.Category,
		models.StringList(s.Questions), models.StringList(s.Answers),
		s.Feedback, s.Score, models.FormatTime(s.CreatedAt), models.FormatTime(s.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert interview session: %w", err)
	}
	return nil
}

// GetByID returns the interview session with the given id, or nil if there is none.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.InterviewSession, error) {
	s, err := scan(r.db.QueryRowContext(ctx, selectSession+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get interview session %s: %w", id, err)
	}
	return s, nil
}

// GetAll returns every row in list order; the result is never nil.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.InterviewSession, error) {
	rows, err := r.db.QueryContext(ctx, selectSession+` ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select interview sessions: %w", err)
	}
	defer rows.Close()

	result := []models.InterviewSession{}
	for rows.Next() {
		s, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interview session: %w", err)
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update writes the non-nil members of f and refreshes updated_at.
// It reports whether a row matched.
func (r *SQLiteRepository) Update(ctx context.Context, id string, f models.InterviewSessionFields, now time.Time) (bool, error) {
	query, args, err := sq.Update("interview_sessions").
		SetMap(changes(f)).
		Set("updated_at", sq.Expr("MAX(COALESCE(updated_at, ''), ?)", models.FormatTime(now))).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build interview session update: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update interview session %s: %w", id, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

// DeleteByID removes the row and reports whether it existed.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM interview_sessions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete interview session %s: %w", id, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

func changes(f models.InterviewSessionFields) map[string]any {
	m := map[string]any{}
	if f.Company != nil {
		m["company"] = *f.Company
	}
	if f.Role != nil {
		m["role"] = *f.Role
	}
	if f.Category != nil {
		m["category"] = *f.Category
	}
	if f.Questions != nil {
		m["questions"] = models.StringList(*f.Questions)
	}
	if f.Answers != nil {
		m["answers"] = models.StringList(*f.Answers)
	}
	if f.Feedback != nil {
		m["feedback"] = *f.Feedback
	}
	if f.Score != nil {
		m["score"] = *f.Score
	}
	return m
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.InterviewSession, error) {
	s := &models.InterviewSession{}
	err := row.Scan(&s.ID, &s.Company, &s.Role, &s.Category,
		models.ScanList(&s.Questions), models.ScanList(&s.Answers),
		&s.Feedback, &s.Score, models.ScanTime(&s.CreatedAt), models.ScanTime(&s.UpdatedAt))
	if err != nil {
		return nil, err
	}
	return s, nil
}
