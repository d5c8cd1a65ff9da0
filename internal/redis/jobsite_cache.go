package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ryobiguy/timesheet/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

type JobsiteCache struct {
	client *goredis.Client
	key    string
}

func NewJobsiteCache(r *Redis) *JobsiteCache {
	return &JobsiteCache{
		client: r.Client,
		key:    "jobsites:geofences",
	}
}

// GetAll returns the cached geofence set, or nil on a miss.
func (c *JobsiteCache) GetAll(ctx context.Context) ([]domain.CachedJobsite, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var sites []domain.CachedJobsite
	if err := json.Unmarshal(data, &sites); err != nil {
		return nil, err
	}

	return sites, nil
}

func (c *JobsiteCache) SetAll(ctx context.Context, sites []domain.CachedJobsite, ttl time.Duration) error {
	b, err := json.Marshal(sites)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
