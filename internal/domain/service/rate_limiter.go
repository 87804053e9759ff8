package service

import (
	"context"
	"time"
)

// RateLimiter counts attempts per key over a fixed window.
type RateLimiter interface {
	// Allow records an attempt for key and reports whether it is within limit.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)

	// Reset clears the counter for key.
	Reset(ctx context.Context, key string) error
}
