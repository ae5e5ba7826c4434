package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// ResultCache stores resolved live tracking records so repeated lookups
// within the TTL window skip the provider cascade.
// Key format: track:<kind>:<tracking_number>
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache wraps the given Redis client. A non-positive TTL falls
// back to five minutes.
func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ResultCache{client: client, ttl: ttl}
}

// Get returns the cached record, or (nil, nil) on a miss.
func (c *ResultCache) Get(ctx context.Context, kind domain.ShipmentKind, number string) (*domain.TrackingRecord, error) {
	raw, err := c.client.Get(ctx, c.key(kind, number)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var rec domain.TrackingRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &rec, nil
}

// Set stores the record, expiring after the configured TTL.
func (c *ResultCache) Set(ctx context.Context, kind domain.ShipmentKind, number string, rec *domain.TrackingRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(kind, number), raw, c.ttl).Err()
}

func (c *ResultCache) key(kind domain.ShipmentKind, number string) string {
	return fmt.Sprintf("track:%s:%s", kind, number)
}
