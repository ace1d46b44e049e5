package vault

import (
	"context"

	"github.com/dmitrijs2005/wickit/internal/dbx"
	"github.com/dmitrijs2005/wickit/internal/vault/models"
)

// CreateJob stores a new job. Fields left nil take their defaults.
func (v *Vault) CreateJob(ctx context.Context, f models.JobFields) (*models.Job, error) {
	if err := models.Validate(f); err != nil {
		return nil, err
	}
	j := models.NewJob(newID(), v.now(), f)

	return query(ctx, v, "create job", func(ctx context.Context, tx dbx.DBTX) (*models.Job, error) {
		repo := v.repomanager.Jobs(tx)
		if err := repo.Insert(ctx, &j); err != nil {
			return nil, err
		}
		return repo.GetByID(ctx, j.ID)
	})
}

// GetJob returns nil and no error when id is unknown.
func (v *Vault) GetJob(ctx context.Context, id string) (*models.Job, error) {
	return query(ctx, v, "get job", func(ctx context.Context, tx dbx.DBTX) (*models.Job, error) {
		return v.repomanager.Jobs(tx).GetByID(ctx, id)
	})
}

// ListJobs returns all jobs, newest first.
func (v *Vault) ListJobs(ctx context.Context) ([]models.Job, error) {
	return query(ctx, v, "list jobs", func(ctx context.Context, tx dbx.DBTX) ([]models.Job, error) {
		return v.repomanager.Jobs(tx).GetAll(ctx)
	})
}

// UpdateJob writes the non-nil members of f and returns the stored job,
// or nil when id is unknown.
func (v *Vault) UpdateJob(ctx context.Context, id string, f models.JobFields) (*models.Job, error) {
	if err := models.Validate(f); err != nil {
		return nil, err
	}
	now := v.now()

	return query(ctx, v, "update job", func(ctx context.Context, tx dbx.DBTX) (*models.Job, error) {
		repo := v.repomanager.Jobs(tx)
		ok, err := repo.Update(ctx, id, f, now)
		if err != nil || !ok {
			return nil, err
		}
		return repo.GetByID(ctx, id)
	})
}

// DeleteJob reports whether a job was removed. Offers pointing at it keep
// their job_id.
func (v *Vault) DeleteJob(ctx context.Context, id string) (bool, error) {
	return query(ctx, v, "delete job", func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		return v.repomanager.Jobs(tx).DeleteByID(ctx, id)
	})
}
