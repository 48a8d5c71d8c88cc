package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"campaign-srv/internal/model"
	"campaign-srv/internal/provisioning/repository"
)

const (
	runDetailKeyFormat  = "provisioning:run:%s"
	defaultRunDetailTTL = 5 * time.Minute
)

// runDetailEntry is the cached payload for one run
type runDetailEntry struct {
	Run       model.ProvisioningRun       `json:"run"`
	Resources []model.ProvisionedResource `json:"resources"`
}

func runDetailKey(runID string) string {
	return fmt.Sprintf(runDetailKeyFormat, runID)
}

// GetRunDetail returns a cached run with its resources, or ErrCacheMiss.
func (c *implCache) GetRunDetail(ctx context.Context, runID string) (*model.ProvisioningRun, []model.ProvisionedResource, error) {
	raw, err := c.redis.Get(ctx, runDetailKey(runID))
	if err == goredis.Nil {
		return nil, nil, repository.ErrCacheMiss
	}
	if err != nil {
		c.l.Warnf(ctx, "provisioning.repository.redis.GetRunDetail: failed to get key: %v", err)
		return nil, nil, repository.ErrCacheMiss
	}

	var entry runDetailEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		c.l.Warnf(ctx, "provisioning.repository.redis.GetRunDetail: failed to decode entry: %v", err)
		return nil, nil, repository.ErrCacheMiss
	}

	return &entry.Run, entry.Resources, nil
}

// SetRunDetail caches a run with its resources for the configured TTL.
func (c *implCache) SetRunDetail(ctx context.Context, run model.ProvisioningRun, resources []model.ProvisionedResource) error {
	entry := runDetailEntry{
		Run:       run,
		Resources: resources,
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		c.l.Errorf(ctx, "provisioning.repository.redis.SetRunDetail: failed to encode entry: %v", err)
		return err
	}

	if err := c.redis.Set(ctx, runDetailKey(run.ID), raw, c.ttl); err != nil {
		c.l.Warnf(ctx, "provisioning.repository.redis.SetRunDetail: failed to set key: %v", err)
		return err
	}

	return nil
}

// InvalidateRunDetail drops the cached entry for a run.
func (c *implCache) InvalidateRunDetail(ctx context.Context, runID string) error {
	if err := c.redis.Delete(ctx, runDetailKey(runID)); err != nil {
		c.l.Warnf(ctx, "provisioning.repository.redis.InvalidateRunDetail: failed to delete key: %v", err)
		return err
	}

	return nil
}
