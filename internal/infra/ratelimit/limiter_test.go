package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T) (*miniredis.Miniredis, *redisLimiter) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, New(client).(*redisLimiter)
}

func TestRedisLimiter_FixedWindow(t *testing.T) {
	mr, limiter := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "login:a@example.com", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i+1)
	}

	ok, err := limiter.Allow(ctx, "login:a@example.com", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// Other keys are independent.
	ok, err = limiter.Allow(ctx, "login:b@example.com", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"login:a@example.com"))

	mr.FastForward(time.Minute + time.Second)

	ok, err = limiter.Allow(ctx, "login:a@example.com", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLimiter_WindowNotExtended(t *testing.T) {
	mr, limiter := newTestLimiter(t)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "k", 5, time.Minute)
	require.NoError(t, err)

	mr.FastForward(40 * time.Second)

	_, err = limiter.Allow(ctx, "k", 5, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, mr.TTL(keyPrefix+"k"))
}

func TestRedisLimiter_Reset(t *testing.T) {
	mr, limiter := newTestLimiter(t)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "k", 1, time.Minute)
	require.NoError(t, err)
	ok, err := limiter.Allow(ctx, "k", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, limiter.Reset(ctx, "k"))
	assert.False(t, mr.Exists(keyPrefix+"k"))

	ok, err = limiter.Allow(ctx, "k", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLimiter_Unavailable(t *testing.T) {
	mr, limiter := newTestLimiter(t)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "k", 1, time.Minute)
	assert.Error(t, err)
}

func TestNoopLimiter(t *testing.T) {
	limiter := New(nil)

	ok, err := limiter.Allow(context.Background(), "k", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, limiter.Reset(context.Background(), "k"))
}

func TestRedisLimiter_RestoresMissingTTL(t *testing.T) {
	mr, limiter := newTestLimiter(t)
	ctx := context.Background()

	// A counter left without an expiry, e.g. by an interrupted earlier write.
	require.NoError(t, mr.Set(keyPrefix+"reset:a@example.com", "7"))

	ok, err := limiter.Allow(ctx, "reset:a@example.com", 3, time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+"reset:a@example.com"))

	mr.FastForward(time.Hour + time.Second)

	ok, err = limiter.Allow(ctx, "reset:a@example.com", 3, time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}
