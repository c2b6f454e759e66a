package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coachos/pitchpilot/pkg/metrics"
)

// Open-data match files never change once published, but a TTL keeps the
// keyspace from growing without bound.
const defaultRedisTTL = 7 * 24 * time.Hour

const pingTimeout = 5 * time.Second

// RedisCache stores payloads in redis under a shared key prefix.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// RedisOption applies a configuration option to the RedisCache.
type RedisOption func(*RedisCache)

// WithTTL overrides the entry time-to-live.
func WithTTL(ttl time.Duration) RedisOption {
	return func(c *RedisCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithKeyPrefix overrides the key prefix.
func WithKeyPrefix(prefix string) RedisOption {
	return func(c *RedisCache) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// NewRedis connects to redis at the given URL and verifies the connection.
func NewRedis(url string, opts ...RedisOption) (*RedisCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	c := &RedisCache{
		client: client,
		prefix: "pitchpilot:match:",
		ttl:    defaultRedisTTL,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Get reads the payload for key. A missing key is a miss, not an error.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheMiss("redis")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	metrics.RecordCacheHit("redis")
	return data, true, nil
}

// Set stores the payload under key with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte) error {
	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
