package service

import (
	"context"
	"encoding/json"

	"github.com/gov-comms/activity-tracker/internal/domain"
	"github.com/gov-comms/activity-tracker/pkg/logger"
	"github.com/gov-comms/activity-tracker/pkg/redis"
)

// ResponseCache caches mapped single-activity responses in Redis.
// Every operation degrades to a miss or a no-op when Redis is absent
// or failing; caching never fails a request.
type ResponseCache struct {
	redis *redis.Client // nil when Redis is not configured
	log   *logger.Logger
}

func NewResponseCache(redisClient *redis.Client, log *logger.Logger) *ResponseCache {
	return &ResponseCache{redis: redisClient, log: log}
}

// GetActivity returns a cached response and whether it was found
func (c *ResponseCache) GetActivity(ctx context.Context, id int64) (*domain.ActivityResponse, bool) {
	if c.redis == nil {
		return nil, false
	}

	raw, err := c.redis.Get(ctx, c.redis.KeyBuilder.KeyActivityResponse(id))
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.WithError(err).WithField("activity_id", id).Debug("Activity cache read failed")
		return nil, false
	}

	var resp domain.ActivityResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		c.log.WithError(err).WithField("activity_id", id).Warn("Dropping undecodable cached activity")
		_ = c.redis.Delete(ctx, c.redis.KeyBuilder.KeyActivityResponse(id))
		return nil, false
	}
	return &resp, true
}

// SetActivity stores a mapped response with the standard TTL
func (c *ResponseCache) SetActivity(ctx context.Context, resp *domain.ActivityResponse) {
	if c.redis == nil || resp == nil {
		return
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		c.log.WithError(err).WithField("activity_id", resp.ID).Warn("Failed to encode activity for cache")
		return
	}
	if err := c.redis.Set(ctx, c.redis.KeyBuilder.KeyActivityResponse(resp.ID), raw, redis.TTLActivityResponse); err != nil {
		c.log.WithError(err).WithField("activity_id", resp.ID).Debug("Activity cache write failed")
	}
}

// Invalidate drops the cached response for an activity after a write
func (c *ResponseCache) Invalidate(ctx context.Context, id int64) {
	if c.redis == nil {
		return
	}
	if err := c.redis.Delete(ctx, c.redis.KeyBuilder.KeyActivityResponse(id)); err != nil {
		c.log.WithError(err).WithField("activity_id", id).Debug("Activity cache invalidation failed")
	}
}
