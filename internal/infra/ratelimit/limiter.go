package ratelimit

import (
	"context"
	"time"

	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "gatekeeper:rl:"

// redisLimiter is a fixed-window counter. INCR and EXPIRE NX go out in one
// transaction, so a counter never outlives its window without a TTL.
type redisLimiter struct {
	client *redis.Client
}

// New returns the Redis limiter, or a limiter that allows everything when client is nil.
func New(client *redis.Client) service.RateLimiter {
	if client == nil {
		return noopLimiter{}
	}

	return &redisLimiter{client: client}
}

func (l *redisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if limit <= 0 || window <= 0 {
		return true, nil
	}

	redisKey := keyPrefix + key

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, window)

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "rate limiter unavailable")
	}

	return incr.Val() <= int64(limit), nil
}

func (l *redisLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to reset rate limit")
	}

	return nil
}

type noopLimiter struct{}

func (noopLimiter) Allow(context.Context, string, int, time.Duration) (bool, error) {
	return true, nil
}

func (noopLimiter) Reset(context.Context, string) error {
	return nil
}
