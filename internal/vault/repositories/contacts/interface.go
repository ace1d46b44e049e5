package contacts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/wickit/internal/vault/models"
)

// Repository describes persistence operations for Contact records.
type Repository interface {
	Insert(ctx context.Context, c *models.Contact) error
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	GetAll(ctx context.Context) ([]models.Contact, error)
	Update(ctx context.Context, id string, fields models.ContactFields, now time.Time) (bool, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
