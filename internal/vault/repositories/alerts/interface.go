package alerts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/wickit/internal/vault/models"
)

// Repository describes persistence operations for JobAlert records.
type Repository interface {
	Insert(ctx context.Context, a *models.JobAlert) error
	GetByID(ctx context.Context, id string) (*models.JobAlert, error)
	GetAll(ctx context.Context) ([]models.JobAlert, error)
	Update(ctx context.Context, id string, fields models.JobAlertFields, now time.Time) (bool, error)
	DeleteByID(ctx context.Context, id string) (bool, error)

	// Toggle flips is_active in place.
	Toggle(ctx context.Context, id string, now time.Time) (bool, error)

	// MarkRun records now as the alert's last run.
	MarkRun(ctx context.Context, id string, now time.Time) (bool, error)
}
