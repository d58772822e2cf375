package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"solpay/internal/metrics"
)

const usernameKeyPrefix = "username:"

// DefaultTTL bounds how stale a cached username may get. Entries are always
// re-derivable from the users/contacts tables.
const DefaultTTL = 24 * time.Hour

// UsernameCache is a best-effort address-to-username cache. Every failure is
// logged and swallowed so callers can fall back to the repository; the cache
// being down must never fail a request.
type UsernameCache struct {
	client  *redis.Client
	logs    *zap.SugaredLogger
	metrics *metrics.Metrics
	ttl     time.Duration
}

// NewUsernameCache connects to Redis at addr. An empty addr disables the
// cache entirely: Get always misses and Put is a no-op.
func NewUsernameCache(addr, password string, logger *zap.SugaredLogger, m *metrics.Metrics) *UsernameCache {
	var client *redis.Client
	if addr != "" {
		client = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		})
	}

	return &UsernameCache{
		client:  client,
		logs:    logger,
		metrics: m,
		ttl:     DefaultTTL,
	}
}

func (c *UsernameCache) Get(ctx context.Context, address string) (string, bool) {
	if c.client == nil {
		return "", false
	}

	username, err := c.client.Get(ctx, usernameKeyPrefix+address).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logs.Errorw("username cache read failed", "error", err, "address", address)
		}
		c.metrics.CacheLookups.WithLabelValues("miss").Inc()
		return "", false
	}

	c.metrics.CacheLookups.WithLabelValues("hit").Inc()
	return username, true
}

func (c *UsernameCache) Put(ctx context.Context, address, username string) {
	if c.client == nil || username == "" {
		return
	}

	if err := c.client.Set(ctx, usernameKeyPrefix+address, username, c.ttl).Err(); err != nil {
		c.logs.Errorw("username cache write failed", "error", err, "address", address)
	}
}

// Ping verifies connectivity at startup. A disabled cache reports healthy.
func (c *UsernameCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}
