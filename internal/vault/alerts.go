package vault

import (
	"context"

	"github.com/dmitrijs2005/wickit/internal/dbx"
	"github.com/dmitrijs2005/wickit/internal/vault/models"
)

// CreateJobAlert stores a new alert; it starts active unless f says otherwise.
func (v *Vault) CreateJobAlert(ctx context.Context, f models.JobAlertFields) (*models.JobAlert, error) {
	if err := models.Validate(f); err != nil {
		return nil, err
	}
	a := models.NewJobAlert(newID(), v.now(), f)

	return query(ctx, v, "create job alert", func(ctx context.Context, tx dbx.DBTX) (*models.JobAlert, error) {
		repo := v.repomanager.Alerts(tx)
		if err := repo.Insert(ctx, &a); err != nil {
			return nil, err
		}
		return repo.GetByID(ctx, a.ID)
	})
}

// GetJobAlert returns nil and no error when id is unknown.
func (v *Vault) GetJobAlert(ctx context.Context, id string) (*models.JobAlert, error) {
	return query(ctx, v, "get job alert", func(ctx context.Context, tx dbx.DBTX) (*models.JobAlert, error) {
		return v.repomanager.Alerts(tx).GetByID(ctx, id)
	})
}

// ListJobAlerts returns all alerts, newest first.
func (v *Vault) ListJobAlerts(ctx context.Context) ([]models.JobAlert, error) {
	return query(ctx, v, "list job alerts", func(ctx context.Context, tx dbx.DBTX) ([]models.JobAlert, error) {
		return v.repomanager.Alerts(tx).GetAll(ctx)
	})
}

// UpdateJobAlert writes the non-nil members of f, including LastRun.
// It returns nil when id is unknown.
func (v *Vault) UpdateJobAlert(ctx context.Context, id string, f models.JobAlertFields) (*models.JobAlert, error) {
	if err := models.Validate(f); err != nil {
		return nil, err
	}
	now := v.now()

	return query(ctx, v, "update job alert", func(ctx context.Context, tx dbx.DBTX) (*models.JobAlert, error) {
		repo := v.repomanager.Alerts(tx)
		ok, err := repo.Update(ctx, id, f, now)
		if err != nil || !ok {
			return nil, err
		}
		return repo.GetByID(ctx, id)
	})
}

// DeleteJobAlert reports whether an alert was removed.
func (v *Vault) DeleteJobAlert(ctx context.Context, id string) (bool, error) {
	return query(ctx, v, "delete job alert", func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		return v.repomanager.Alerts(tx).DeleteByID(ctx, id)
	})
}

// ToggleJobAlert flips the alert's active flag and returns the result,
// or nil when id is unknown.
func (v *Vault) ToggleJobAlert(ctx context.Context, id string) (*models.JobAlert, error) {
	now := v.now()

	return query(ctx, v, "toggle job alert", func(ctx context.Context, tx dbx.DBTX) (*models.JobAlert, error) {
		repo := v.repomanager.Alerts(tx)
		ok, err := repo.Toggle(ctx, id, now)
		if err != nil || !ok {
			return nil, err
		}
		return repo.GetByID(ctx, id)
	})
}

// RunJobAlert stamps the alert's last run. No search is performed, so the
// run never finds jobs.
func (v *Vault) RunJobAlert(ctx context.Context, id string) (*models.AlertRun, error) {
	now := v.now()

	return query(ctx, v, "run job alert", func(ctx context.Context, tx dbx.DBTX) (*models.AlertRun, error) {
		repo := v.repomanager.Alerts(tx)
		ok, err := repo.MarkRun(ctx, id, now)
		if err != nil || !ok {
			return nil, err
		}
		a, err := repo.GetByID(ctx, id)
		if err != nil || a == nil {
			return nil, err
		}
		return models.NewAlertRun(a), nil
	})
}
