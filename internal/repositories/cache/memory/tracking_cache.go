// Package memory is the in-process tracking cache used when no Redis is configured.
package memory

import (
	"context"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/SscSPs/hawala_settlement/internal/core/ports"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const DefaultSize = 10_000

// TrackingCache is a size-bounded LRU whose entries expire after a fixed TTL.
type TrackingCache struct {
	lru *expirable.LRU[string, domain.TrackingView]
}

var _ ports.TrackingCache = (*TrackingCache)(nil)

// NewTrackingCache creates a cache holding at most size views for ttl each.
func NewTrackingCache(size int, ttl time.Duration) *TrackingCache {
	if size <= 0 {
		size = DefaultSize
	}
	return &TrackingCache{lru: expirable.NewLRU[string, domain.TrackingView](size, nil, ttl)}
}

func (c *TrackingCache) Get(_ context.Context, referenceCode string) (*domain.TrackingView, bool, error) {
	view, ok := c.lru.Get(referenceCode)
	if !ok {
		return nil, false, nil
	}
	return &view, true, nil
}

func (c *TrackingCache) Set(_ context.Context, view domain.TrackingView) error {
	c.lru.Add(view.ReferenceCode, view)
	return nil
}

func (c *TrackingCache) Invalidate(_ context.Context, referenceCode string) error {
	c.lru.Remove(referenceCode)
	return nil
}

// Len reports the number of live entries.
func (c *TrackingCache) Len() int {
	return c.lru.Len()
}
