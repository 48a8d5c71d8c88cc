package postgre

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"campaign-srv/internal/model"
	"campaign-srv/internal/provisioning/repository"
)

// CreateResources inserts the provisioned resource records in a single transaction.
func (r *implRepository) CreateResources(ctx context.Context, opts []repository.CreateResourceOptions) ([]model.ProvisionedResource, error) {
	if len(opts) == 0 {
		return []model.ProvisionedResource{}, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "provisioning.repository.postgre.CreateResources: failed to begin tx: %v", err)
		return nil, repository.ErrFailedToInsert
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("provisioned_resources",
		"id", "run_id", "resource_type", "resource_name", "external_id", "display_name", "created_at"))
	if err != nil {
		r.l.Errorf(ctx, "provisioning.repository.postgre.CreateResources: failed to prepare copy: %v", err)
		return nil, repository.ErrFailedToInsert
	}

	now := time.Now()
	resources := make([]model.ProvisionedResource, 0, len(opts))
	for _, opt := range opts {
		res := model.ProvisionedResource{
			ID:           uuid.NewString(),
			RunID:        opt.RunID,
			ResourceType: opt.ResourceType,
			ResourceName: opt.ResourceName,
			ExternalID:   opt.ExternalID,
			DisplayName:  opt.DisplayName,
			CreatedAt:    now,
		}

		if _, err := stmt.ExecContext(ctx, res.ID, res.RunID, res.ResourceType,
			res.ResourceName, res.ExternalID, res.DisplayName, res.CreatedAt); err != nil {
			r.l.Errorf(ctx, "provisioning.repository.postgre.CreateResources: failed to buffer row: %v", err)
			return nil, repository.ErrFailedToInsert
		}

		resources = append(resources, res)
	}

	// flush the COPY buffer
	if _, err := stmt.ExecContext(ctx); err != nil {
		r.l.Errorf(ctx, "provisioning.repository.postgre.CreateResources: failed to flush copy: %v", err)
		return nil, repository.ErrFailedToInsert
	}
	if err := stmt.Close(); err != nil {
		r.l.Errorf(ctx, "provisioning.repository.postgre.CreateResources: failed to close stmt: %v", err)
		return nil, repository.ErrFailedToInsert
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "provisioning.repository.postgre.CreateResources: failed to commit: %v", err)
		return nil, repository.ErrFailedToInsert
	}

	return resources, nil
}

// ListResourcesByRun returns the resources created by a run in creation order.
func (r *implRepository) ListResourcesByRun(ctx context.Context, runID string) ([]model.ProvisionedResource, error) {
	query := `
		SELECT id, run_id, resource_type, resource_name, external_id, display_name, created_at
		FROM provisioned_resources
		WHERE run_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		r.l.Errorf(ctx, "provisioning.repository.postgre.ListResourcesByRun: failed to list resources: %v", err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	resources := []model.ProvisionedResource{}
	for rows.Next() {
		var res model.ProvisionedResource
		if err := rows.Scan(&res.ID, &res.RunID, &res.ResourceType, &res.ResourceName,
			&res.ExternalID, &res.DisplayName, &res.CreatedAt); err != nil {
			r.l.Errorf(ctx, "provisioning.repository.postgre.ListResourcesByRun: failed to scan resource: %v", err)
			return nil, repository.ErrFailedToList
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "provisioning.repository.postgre.ListResourcesByRun: rows error: %v", err)
		return nil, repository.ErrFailedToList
	}

	return resources, nil
}
