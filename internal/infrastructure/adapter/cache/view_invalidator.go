package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
)

// RedisViewInvalidator drops rendered dashboard views kept under keyPrefix+path
// and announces each stale path on channel so connected frontends re-render
type RedisViewInvalidator struct {
	client    redis.UniversalClient
	keyPrefix string
	channel   string
	logger    coreport.Logger
}

// NewRedisViewInvalidator creates a Redis-backed view invalidator
func NewRedisViewInvalidator(client redis.UniversalClient, keyPrefix, channel string, logger coreport.Logger) *RedisViewInvalidator {
	return &RedisViewInvalidator{
		client:    client,
		keyPrefix: keyPrefix,
		channel:   channel,
		logger:    logger,
	}
}

// Invalidate deletes the cached views and publishes every path, in order
func (i *RedisViewInvalidator) Invalidate(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	keys := make([]string, len(paths))
	for n, path := range paths {
		keys[n] = i.keyPrefix + path
	}

	if err := i.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cached views: %w", err)
	}

	for _, path := range paths {
		if err := i.client.Publish(ctx, i.channel, path).Err(); err != nil {
			return fmt.Errorf("failed to publish invalidation of %s: %w", path, err)
		}
	}

	i.logger.Debug("Views invalidated", map[string]any{
		"paths":   paths,
		"channel": i.channel,
	})
	return nil
}

// NoopViewInvalidator is used when no Redis is configured
type NoopViewInvalidator struct{}

// NewNoopViewInvalidator creates an invalidator that does nothing
func NewNoopViewInvalidator() *NoopViewInvalidator {
	return &NoopViewInvalidator{}
}

// Invalidate does nothing
func (NoopViewInvalidator) Invalidate(context.Context, ...string) error {
	return nil
}
