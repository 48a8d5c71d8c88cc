package postgre

import (
	"context"
	"database/sql"
	"time"

	"campaign-srv/internal/model"
	"campaign-srv/internal/provisioning/repository"
	"campaign-srv/pkg/paginator"
)

const runColumns = `id, customer_id, mode, status, failed_step, error_message,
	budget_resource, campaign_resource, ad_group_resource,
	ads_created, keywords_created, report_url, requested_by,
	started_at, completed_at, created_at, updated_at`

// CreateRun inserts a new PENDING run record.
func (r *implRepository) CreateRun(ctx context.Context, opt repository.CreateRunOptions) (model.ProvisioningRun, error) {
	now := time.Now()

	query := `
		INSERT INTO provisioning_runs (id, customer_id, mode, status, requested_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`

	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.CustomerID, opt.Mode, model.RunStatusPending, opt.RequestedBy, now)
	if err != nil {
		r.l.Errorf(ctx, "provisioning.repository.postgre.CreateRun: failed to insert run: %v", err)
		return model.ProvisioningRun{}, repository.ErrFailedToInsert
	}

	return model.ProvisioningRun{
		ID:          opt.ID,
		CustomerID:  opt.CustomerID,
		Mode:        opt.Mode,
		Status:      model.RunStatusPending,
		RequestedBy: opt.RequestedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// DetailRun fetches a run by primary key.
func (r *implRepository) DetailRun(ctx context.Context, id string) (model.ProvisioningRun, error) {
	query := `SELECT ` + runColumns + ` FROM provisioning_runs WHERE id = $1`

	run, err := scanRun(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.ProvisioningRun{}, repository.ErrRunNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "provisioning.repository.postgre.DetailRun: failed to get run: %v", err)
		return model.ProvisioningRun{}, repository.ErrFailedToGet
	}

	return run, nil
}

// GetRuns lists runs with filters and pagination.
func (r *implRepository) GetRuns(ctx context.Context, opt repository.GetRunsOptions) ([]model.ProvisioningRun, paginator.Paginator, error) {
	opt.PaginateQuery.Adjust()

	where, args := buildRunsWhere(opt)

	countQuery := `SELECT COUNT(*) FROM provisioning_runs` + where
	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "provisioning.repository.postgre.GetRuns: failed to count runs: %v", err)
		return nil, paginator.Paginator{}, repository.ErrFailedToList
	}

	query := `SELECT ` + runColumns + ` FROM provisioning_runs` + where +
		` ORDER BY created_at DESC` + buildRunsLimit(opt, len(args))
	args = append(args, opt.PaginateQuery.Limit, opt.PaginateQuery.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "provisioning.repository.postgre.GetRuns: failed to list runs: %v", err)
		return nil, paginator.Paginator{}, repository.ErrFailedToList
	}
	defer rows.Close()

	runs := []model.ProvisioningRun{}
	for rows.Next() {
		run, scanErr := scanRun(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "provisioning.repository.postgre.GetRuns: failed to scan run: %v", scanErr)
			return nil, paginator.Paginator{}, repository.ErrFailedToList
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "provisioning.repository.postgre.GetRuns: rows error: %v", err)
		return nil, paginator.Paginator{}, repository.ErrFailedToList
	}

	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(runs)),
		PerPage:     opt.PaginateQuery.Limit,
		CurrentPage: opt.PaginateQuery.Page,
	}

	return runs, pag, nil
}

// MarkRunRunning transitions a run to RUNNING and stamps started_at.
func (r *implRepository) MarkRunRunning(ctx context.Context, id string) error {
	query := `
		UPDATE provisioning_runs
		SET status = $2, started_at = $3, updated_at = $3
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, model.RunStatusRunning, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "provisioning.repository.postgre.MarkRunRunning: failed to update run: %v", err)
		return repository.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrRunNotFound
	}

	return nil
}

// UpdateRunProgress records the step results collected so far.
func (r *implRepository) UpdateRunProgress(ctx context.Context, opt repository.UpdateRunProgressOptions) error {
	query := `
		UPDATE provisioning_runs
		SET budget_resource = $2, campaign_resource = $3, ad_group_resource = $4,
			ads_created = $5, keywords_created = $6, updated_at = $7
		WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, opt.ID,
		nullString(opt.BudgetResource), nullString(opt.CampaignResource), nullString(opt.AdGroupResource),
		opt.AdsCreated, opt.KeywordsCreated, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "provisioning.repository.postgre.UpdateRunProgress: failed to update run: %v", err)
		return repository.ErrFailedToUpdate
	}

	return nil
}

// MarkRunCompleted transitions a run to COMPLETED.
func (r *implRepository) MarkRunCompleted(ctx context.Context, opt repository.MarkRunCompletedOptions) (model.ProvisioningRun, error) {
	query := `
		UPDATE provisioning_runs
		SET status = $2, report_url = $3, completed_at = $4, updated_at = $4
		WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, opt.ID, model.RunStatusCompleted, nullString(opt.ReportURL), time.Now())
	if err != nil {
		r.l.Errorf(ctx, "provisioning.repository.postgre.MarkRunCompleted: failed to update run: %v", err)
		return model.ProvisioningRun{}, repository.ErrFailedToUpdate
	}

	return r.DetailRun(ctx, opt.ID)
}

// MarkRunFailed transitions a run to FAILED with the failing step and error.
func (r *implRepository) MarkRunFailed(ctx context.Context, opt repository.MarkRunFailedOptions) (model.ProvisioningRun, error) {
	query := `
		UPDATE provisioning_runs
		SET status = $2, failed_step = $3, error_message = $4, report_url = $5, completed_at = $6, updated_at = $6
		WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, opt.ID, model.RunStatusFailed,
		nullString(opt.FailedStep), nullString(opt.ErrorMessage), nullString(opt.ReportURL), time.Now())
	if err != nil {
		r.l.Errorf(ctx, "provisioning.repository.postgre.MarkRunFailed: failed to update run: %v", err)
		return model.ProvisioningRun{}, repository.ErrFailedToUpdate
	}

	return r.DetailRun(ctx, opt.ID)
}
