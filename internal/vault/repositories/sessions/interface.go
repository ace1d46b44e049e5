package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/wickit/internal/vault/models"
)

// Repository describes persistence operations for InterviewSession records.
type Repository interface {
	Insert(ctx context.Context, s *models.InterviewSession) error
	GetByID(ctx context.Context, id string) (*models.InterviewSession, error)
	GetAll(ctx context.Context) ([]models.InterviewSession, error)
	Update(ctx context.Context, id string, fields models.InterviewSessionFields, now time.Time) (bool, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
