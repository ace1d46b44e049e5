package vault

import (
	"context"

	"github.com/dmitrijs2005/wickit/internal/dbx"
	"github.com/dmitrijs2005/wickit/internal/vault/models"
)

// CreateInterviewSession stores a new practice session.
func (v *Vault) CreateInterviewSession(ctx context.Context, f models.InterviewSessionFields) (*models.InterviewSession, error) {
	if err := models.Validate(f); err != nil {
		return nil, err
	}
	s := models.NewInterviewSession(newID(), v.now(), f)

	return query(ctx, v, "create interview session", func(ctx context.Context, tx dbx.DBTX) (*models.InterviewSession, error) {
		repo := v.repomanager.Sessions(tx)
		if err := repo.Insert(ctx, &s); err != nil {
			return nil, err
		}
		return repo.GetByID(ctx, s.ID)
	})
}

// GetInterviewSession returns nil and no error when id is unknown.
func (v *Vault) GetInterviewSession(ctx context.Context, id string) (*models.InterviewSession, error) {
	return query(ctx, v, "get interview session", func(ctx context.Context, tx dbx.DBTX) (*models.InterviewSession, error) {
		return v.repomanager.Sessions(tx).GetByID(ctx, id)
	})
}

// ListInterviewSessions returns all sessions, newest first.
func (v *Vault) ListInterviewSessions(ctx context.Context) ([]models.InterviewSession, error) {
	return query(ctx, v, "list interview sessions", func(ctx context.Context, tx dbx.DBTX) ([]models.InterviewSession, error) {
		return v.repomanager.Sessions(tx).GetAll(ctx)
	})
}

// UpdateInterviewSession replaces list fields wholesale when they are supplied.
// It returns nil when id is unknown.
func (v *Vault) UpdateInterviewSession(ctx context.Context, id string, f models.InterviewSessionFields) (*models.InterviewSession, error) {
	if err := models.Validate(f); err != nil {
		return nil, err
	}
	now := v.now()

	return query(ctx, v, "update interview session", func(ctx context.Context, tx dbx.DBTX) (*models.InterviewSession, error) {
		repo := v.repomanager.Sessions(tx)
		ok, err := repo.Update(ctx, id, f, now)
		if err != nil || !ok {
			return nil, err
		}
		return repo.GetByID(ctx, id)
	})
}

// DeleteInterviewSession reports whether a session was removed.
func (v *Vault) DeleteInterviewSession(ctx context.Context, id string) (bool, error) {
	return query(ctx, v, "delete interview session", func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		return v.repomanager.Sessions(tx).DeleteByID(ctx, id)
	})
}
