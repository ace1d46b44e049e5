package offers

import (
	"context"
	"time"

	"github.com/dmitrijs2005/wickit/internal/vault/models"
)

// Repository describes persistence operations for Offer records.
// JobID is stored as given; nothing checks it against the jobs table.
type Repository interface {
	Insert(ctx context.Context, o *models.Offer) error
	GetByID(ctx context.Context, id string) (*models.Offer, error)
	GetAll(ctx context.Context) ([]models.Offer, error)
	Update(ctx context.Context, id string, fields models.OfferFields, now time.Time) (bool, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
