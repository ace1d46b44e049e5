package jobs

import (
	"context"
	"time"

	"github.com/dmitrijs2005/wickit/internal/vault/models"
)

// Repository describes persistence operations for Job records.
type Repository interface {
	// Insert stores a fully populated job.
	Insert(ctx context.Context, job *models.Job) error

	// GetByID returns the job, or nil and no error when the id is unknown.
	GetByID(ctx context.Context, id string) (*models.Job, error)

	// GetAll returns every job, newest first.
	GetAll(ctx context.Context) ([]models.Job, error)

	// Update writes the supplied fields and refreshes updated_at. It reports
	// whether a row matched.
	Update(ctx context.Context, id string, fields models.JobFields, now time.Time) (bool, error)

	// DeleteByID removes the job and reports whether a row was removed.
	DeleteByID(ctx context.Context, id string) (bool, error)
}
