package caching

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// counterStore is the slice of the redis client the limiter uses
type counterStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisRateLimiter implements a fixed-window request budget per identifier.
// It satisfies echo's middleware.RateLimiterStore.
type RedisRateLimiter struct {
	store   counterStore
	limit   int
	window  time.Duration
	prefix  string
	timeout time.Duration
	logger  zerolog.Logger
}

// NewRedisClient creates a client, accepting both host:port and redis:// addresses
func NewRedisClient(addr, password string, db int) *redis.Client {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if opts, err := redis.ParseURL(addr); err == nil {
			if password != "" {
				opts.Password = password
			}
			return redis.NewClient(opts)
		}
	}

	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisRateLimiter(store counterStore, prefix string, limit int, window time.Duration, logger zerolog.Logger) *RedisRateLimiter {
	return &RedisRateLimiter{
		store:   store,
		limit:   limit,
		window:  window,
		prefix:  prefix,
		timeout: 500 * time.Millisecond,
		logger:  logger,
	}
}

// Allow counts one request for identifier. Redis failures let the request through.
func (r *RedisRateLimiter) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	limited, err := r.IsRateLimited(ctx, identifier)
	if err != nil {
		r.logger.Warn().Err(err).Str("identifier", identifier).Msg("rate limiter unavailable, allowing request")
		return true, nil
	}
	return !limited, nil
}

// IsRateLimited increments the window counter and reports whether the budget is exhausted
func (r *RedisRateLimiter) IsRateLimited(ctx context.Context, identifier string) (bool, error) {
	key := fmt.Sprintf("%s:%s", r.prefix, identifier)

	count, err := r.store.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		if err := r.store.Expire(ctx, key, r.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count > int64(r.limit), nil
}
