package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gov-comms/activity-tracker/internal/domain"
	"github.com/gov-comms/activity-tracker/pkg/logger"
	"github.com/gov-comms/activity-tracker/pkg/redis"
)

func newTestCache(t *testing.T) *ResponseCache {
	t.Helper()

	mr := miniredis.RunT(t)
	log := logger.NewNop()

	client, err := redis.NewClient("redis://"+mr.Addr(), "staging", log.Logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewResponseCache(client, log)
}

func cachedResponse(id int64) *domain.ActivityResponse {
	return &domain.ActivityResponse{
		ID:                  id,
		Title:               "Cached activity",
		ActivityStatusID:    "unknown",
		LookAheadStatus:     "none",
		LookAheadSection:    "events",
		CalendarVisibility:  "visible",
		PitchStatus:         "unknown",
		SchedulingStatus:    "unknown",
		Category:            []string{"event"},
		Tags:                []domain.TagRef{},
		CreatedBy:           "unknown",
		LastUpdatedBy:       "unknown",
		CreatedDateTime:     "2024-03-01T09:00:00Z",
		LastUpdatedDateTime: "2024-03-01T09:00:00Z",
	}
}

func TestResponseCache_RoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	_, ok := cache.GetActivity(ctx, 7)
	assert.False(t, ok, "cold cache misses")

	cache.SetActivity(ctx, cachedResponse(7))

	got, ok := cache.GetActivity(ctx, 7)
	require.True(t, ok)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Cached activity", got.Title)
	assert.Equal(t, []string{"event"}, got.Category)
}

func TestResponseCache_Invalidate(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.SetActivity(ctx, cachedResponse(3))
	cache.Invalidate(ctx, 3)

	_, ok := cache.GetActivity(ctx, 3)
	assert.False(t, ok)
}

func TestResponseCache_NilRedisIsNoop(t *testing.T) {
	cache := NewResponseCache(nil, logger.NewNop())
	ctx := context.Background()

	cache.SetActivity(ctx, cachedResponse(1))
	cache.Invalidate(ctx, 1)

	_, ok := cache.GetActivity(ctx, 1)
	assert.False(t, ok)
}
