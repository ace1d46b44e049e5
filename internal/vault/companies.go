package vault

import (
	"context"

	"github.com/dmitrijs2005/wickit/internal/dbx"
	"github.com/dmitrijs2005/wickit/internal/vault/models"
)

// CreateCompany stores a new company; LastUpdated starts at the creation time.
func (v *Vault) CreateCompany(ctx context.Context, f models.CompanyFields) (*models.Company, error) {
	if err := models.Validate(f); err != nil {
		return nil, err
	}
	c := models.NewCompany(newID(), v.now(), f)

	return query(ctx, v, "create company", func(ctx context.Context, tx dbx.DBTX) (*models.Company, error) {
		repo := v.repomanager.Companies(tx)
		if err := repo.Insert(ctx, &c); err != nil {
			return nil, err
		}
		return repo.GetByID(ctx, c.ID)
	})
}

// GetCompany returns nil and no error when id is unknown.
func (v *Vault) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	return query(ctx, v, "get company", func(ctx context.Context, tx dbx.DBTX) (*models.Company, error) {
		return v.repomanager.Companies(tx).GetByID(ctx, id)
	})
}

// ListCompanies returns all companies ordered by name.
func (v *Vault) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return query(ctx, v, "list companies", func(ctx context.Context, tx dbx.DBTX) ([]models.Company, error) {
		return v.repomanager.Companies(tx).GetAll(ctx)
	})
}

// UpdateCompany also refreshes LastUpdated.
func (v *Vault) UpdateCompany(ctx context.Context, id string, f models.CompanyFields) (*models.Company, error) {
	if err := models.Validate(f); err != nil {
		return nil, err
	}
	now := v.now()

	return query(ctx, v, "update company", func(ctx context.Context, tx dbx.DBTX) (*models.Company, error) {
		repo := v.repomanager.Companies(tx)
		ok, err := repo.Update(ctx, id, f, now)
		if err != nil || !ok {
			return nil, err
		}
		return repo.GetByID(ctx, id)
	})
}

// DeleteCompany reports whether a company was removed. Jobs and contacts
// naming it are left alone.
func (v *Vault) DeleteCompany(ctx context.Context, id string) (bool, error) {
	return query(ctx, v, "delete company", func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		return v.repomanager.Companies(tx).DeleteByID(ctx, id)
	})
}
