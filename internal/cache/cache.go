// Package cache provides an optional Redis-backed code-to-URL cache for the
// redirect hot path.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "code:"

// DefaultTTL bounds staleness for entries that were never invalidated.
const DefaultTTL = 24 * time.Hour

type Cache struct {
	client *redis.Client
}

// New connects to Redis at addr, accepting either a redis:// URL or a plain
// host:port.
func New(addr string) (*Cache, error) {
	var opt *redis.Options
	if parsed, err := redis.ParseURL(addr); err == nil {
		opt = parsed
	} else {
		opt = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Cache{client: client}, nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}

// GetOriginal returns the cached original URL for a code, or an error on miss.
func (c *Cache) GetOriginal(ctx context.Context, code string) (string, error) {
	return c.client.Get(ctx, keyPrefix+code).Result()
}

func (c *Cache) SetOriginal(ctx context.Context, code, original string, ttl time.Duration) error {
	return c.client.Set(ctx, keyPrefix+code, original, ttl).Err()
}

func (c *Cache) Invalidate(ctx context.Context, code string) error {
	return c.client.Del(ctx, keyPrefix+code).Err()
}
