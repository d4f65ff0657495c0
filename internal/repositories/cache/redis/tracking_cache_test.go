package redis

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*TrackingCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTrackingCache(client, ttl), srv
}

func TestTrackingCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t, 15*time.Second)
	view := domain.TrackingView{
		ReferenceCode: "HW0011012345678Z",
		Status:        domain.StatusPending,
		ToAmount:      decimal.RequireFromString("7080"),
		ReceiverName:  "Z**** N****",
	}

	_, ok, err := c.Get(ctx, view.ReferenceCode)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, view))
	assert.Equal(t, 15*time.Second, srv.TTL(keyPrefix+view.ReferenceCode))

	got, ok, err := c.Get(ctx, view.ReferenceCode)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, view.ReferenceCode, got.ReferenceCode)
	assert.True(t, view.ToAmount.Equal(got.ToAmount))
	assert.Equal(t, view.ReceiverName, got.ReceiverName)

	require.NoError(t, c.Invalidate(ctx, view.ReferenceCode))
	_, ok, err = c.Get(ctx, view.ReferenceCode)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTrackingCache_ExpiresWithTTL(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t, time.Second)
	require.NoError(t, c.Set(ctx, domain.TrackingView{ReferenceCode: "HW0011012345678Z"}))

	srv.FastForward(2 * time.Second)

	_, ok, err := c.Get(ctx, "HW0011012345678Z")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTrackingCache_CorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t, time.Minute)
	require.NoError(t, srv.Set(keyPrefix+"HW0011012345678Z", "{not json"))

	_, ok, err := c.Get(ctx, "HW0011012345678Z")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, srv.Exists(keyPrefix+"HW0011012345678Z"))
}

func TestTrackingCache_ServerDown(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t, time.Minute)
	srv.Close()

	_, _, err := c.Get(ctx, "HW0011012345678Z")
	assert.Error(t, err)
}
