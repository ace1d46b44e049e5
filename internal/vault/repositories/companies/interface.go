package companies

import (
	"context"
	"time"

	"github.com/dmitrijs2005/wickit/internal/vault/models"
)

// Repository describes persistence operations for Company records.
type Repository interface {
	Insert(ctx context.Context, c *models.Company) error

	// GetByID returns nil and no error when the id is unknown.
	GetByID(ctx context.Context, id string) (*models.Company, error)

	// GetAll returns every company ordered by name.
	GetAll(ctx context.Context) ([]models.Company, error)

	// Update writes the supplied fields and refreshes updated_at and
	// last_updated. It reports whether a row matched.
	Update(ctx context.Context, id string, fields models.CompanyFields, now time.Time) (bool, error)

	DeleteByID(ctx context.Context, id string) (bool, error)
}
