// Package redis is the shared tracking cache for deployments running several replicas.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/SscSPs/hawala_settlement/internal/core/ports"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "hawala:track:"

// TrackingCache stores JSON encoded tracking views with a TTL.
type TrackingCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var _ ports.TrackingCache = (*TrackingCache)(nil)

func NewTrackingCache(client redis.UniversalClient, ttl time.Duration) *TrackingCache {
	return &TrackingCache{client: client, ttl: ttl}
}

func (c *TrackingCache) key(referenceCode string) string {
	return keyPrefix + referenceCode
}

func (c *TrackingCache) Get(ctx context.Context, referenceCode string) (*domain.TrackingView, bool, error) {
	data, err := c.client.Get(ctx, c.key(referenceCode)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get tracking view: %w", err)
	}

	var view domain.TrackingView
	if err := json.Unmarshal(data, &view); err != nil {
		// a corrupt entry is treated as a miss and dropped
		_ = c.client.Del(ctx, c.key(referenceCode)).Err()
		return nil, false, nil
	}
	return &view, true, nil
}

func (c *TrackingCache) Set(ctx context.Context, view domain.TrackingView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("encode tracking view: %w", err)
	}
	if err := c.client.Set(ctx, c.key(view.ReferenceCode), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set tracking view: %w", err)
	}
	return nil
}

func (c *TrackingCache) Invalidate(ctx context.Context, referenceCode string) error {
	if err := c.client.Del(ctx, c.key(referenceCode)).Err(); err != nil {
		return fmt.Errorf("invalidate tracking view: %w", err)
	}
	return nil
}
