package memory

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingCache_SetGetInvalidate(t *testing.T) {
	ctx := context.Background()
	c := NewTrackingCache(10, time.Minute)
	view := domain.TrackingView{ReferenceCode: "HW0011012345678Z", Status: domain.StatusPending}

	_, ok, err := c.Get(ctx, view.ReferenceCode)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, view))
	got, ok, err := c.Get(ctx, view.ReferenceCode)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, view, *got)

	// callers get a copy, not the cached value
	got.Status = domain.StatusCompleted
	again, _, _ := c.Get(ctx, view.ReferenceCode)
	assert.Equal(t, domain.StatusPending, again.Status)

	require.NoError(t, c.Invalidate(ctx, view.ReferenceCode))
	_, ok, _ = c.Get(ctx, view.ReferenceCode)
	assert.False(t, ok)
}

func TestTrackingCache_Expires(t *testing.T) {
	ctx := context.Background()
	c := NewTrackingCache(10, 20*time.Millisecond)
	require.NoError(t, c.Set(ctx, domain.TrackingView{ReferenceCode: "HW0011012345678Z"}))

	assert.Eventually(t, func() bool {
		_, ok, _ := c.Get(ctx, "HW0011012345678Z")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestTrackingCache_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c := NewTrackingCache(2, time.Minute)
	for _, code := range []string{"A", "B", "C"} {
		require.NoError(t, c.Set(ctx, domain.TrackingView{ReferenceCode: code}))
	}

	assert.Equal(t, 2, c.Len())
	_, ok, _ := c.Get(ctx, "A")
	assert.False(t, ok)
}
