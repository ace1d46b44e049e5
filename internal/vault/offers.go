package vault

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wickit/internal/common"
	"github.com/dmitrijs2005/wickit/internal/dbx"
	"github.com/dmitrijs2005/wickit/internal/vault/models"
)

// CreateOffer stores a new offer. JobID is not checked against jobs.
func (v *Vault) CreateOffer(ctx context.Context, f models.OfferFields) (*models.Offer, error) {
	if err := models.Validate(f); err != nil {
		return nil, err
	}
	o := models.NewOffer(newID(), v.now(), f)

	return query(ctx, v, "create offer", func(ctx context.Context, tx dbx.DBTX) (*models.Offer, error) {
		repo := v.repomanager.Offers(tx)
		if err := repo.Insert(ctx, &o); err != nil {
			return nil, err
		}
		return repo.GetByID(ctx, o.ID)
	})
}

// GetOffer returns nil and no error when id is unknown.
func (v *Vault) GetOffer(ctx context.Context, id string) (*models.Offer, error) {
	return query(ctx, v, "get offer", func(ctx context.Context, tx dbx.DBTX) (*models.Offer, error) {
		return v.repomanager.Offers(tx).GetByID(ctx, id)
	})
}

// ListOffers returns all offers, newest first.
func (v *Vault) ListOffers(ctx context.Context) ([]models.Offer, error) {
	return query(ctx, v, "list offers", func(ctx context.Context, tx dbx.DBTX) ([]models.Offer, error) {
		return v.repomanager.Offers(tx).GetAll(ctx)
	})
}

// UpdateOffer returns the stored offer, or nil when id is unknown.
func (v *Vault) UpdateOffer(ctx context.Context, id string, f models.OfferFields) (*models.Offer, error) {
	if err := models.Validate(f); err != nil {
		return nil, err
	}
	now := v.now()

	return query(ctx, v, "update offer", func(ctx context.Context, tx dbx.DBTX) (*models.Offer, error) {
		repo := v.repomanager.Offers(tx)
		ok, err := repo.Update(ctx, id, f, now)
		if err != nil || !ok {
			return nil, err
		}
		return repo.GetByID(ctx, id)
	})
}

// DeleteOffer reports whether an offer was removed.
func (v *Vault) DeleteOffer(ctx context.Context, id string) (bool, error) {
	return query(ctx, v, "delete offer", func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		return v.repomanager.Offers(tx).DeleteByID(ctx, id)
	})
}

// CalculateOfferValue estimates an offer's total value from its base
// salary. Unknown ids yield common.ErrNotFound.
func (v *Vault) CalculateOfferValue(ctx context.Context, id string) (*models.OfferValuation, error) {
	return query(ctx, v, "calculate offer value", func(ctx context.Context, tx dbx.DBTX) (*models.OfferValuation, error) {
		o, err := v.repomanager.Offers(tx).GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if o == nil {
			return nil, fmt.Errorf("offer %s: %w", id, common.ErrNotFound)
		}
		val := o.Valuate()
		return &val, nil
	})
}
