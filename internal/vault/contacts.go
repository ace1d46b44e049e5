package vault

import (
	"context"

	"github.com/dmitrijs2005/wickit/internal/dbx"
	"github.com/dmitrijs2005/wickit/internal/vault/models"
)

// CreateContact stores a new contact. Company is a name, not a reference.
func (v *Vault) CreateContact(ctx context.Context, f models.ContactFields) (*models.Contact, error) {
	if err := models.Validate(f); err != nil {
		return nil, err
	}
	c := models.NewContact(newID(), v.now(), f)

	return query(ctx, v, "create contact", func(ctx context.Context, tx dbx.DBTX) (*models.Contact, error) {
		repo := v.repomanager.Contacts(tx)
		if err := repo.Insert(ctx, &c); err != nil {
			return nil, err
		}
		return repo.GetByID(ctx, c.ID)
	})
}

// GetContact returns nil and no error when id is unknown.
func (v *Vault) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	return query(ctx, v, "get contact", func(ctx context.Context, tx dbx.DBTX) (*models.Contact, error) {
		return v.repomanager.Contacts(tx).GetByID(ctx, id)
	})
}

// ListContacts returns all contacts ordered by name.
func (v *Vault) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return query(ctx, v, "list contacts", func(ctx context.Context, tx dbx.DBTX) ([]models.Contact, error) {
		return v.repomanager.Contacts(tx).GetAll(ctx)
	})
}

// UpdateContact returns the stored contact, or nil when id is unknown.
func (v *Vault) UpdateContact(ctx context.Context, id string, f models.ContactFields) (*models.Contact, error) {
	if err := models.Validate(f); err != nil {
		return nil, err
	}
	now := v.now()

	return query(ctx, v, "update contact", func(ctx context.Context, tx dbx.DBTX) (*models.Contact, error) {
		repo := v.repomanager.Contacts(tx)
		ok, err := repo.Update(ctx, id, f, now)
		if err != nil || !ok {
			return nil, err
		}
		return repo.GetByID(ctx, id)
	})
}

// DeleteContact reports whether a contact was removed.
func (v *Vault) DeleteContact(ctx context.Context, id string) (bool, error) {
	return query(ctx, v, "delete contact", func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		return v.repomanager.Contacts(tx).DeleteByID(ctx, id)
	})
}
