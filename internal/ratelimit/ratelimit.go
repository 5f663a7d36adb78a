package ratelimit

import (
	"context"
	"time"
)

// Result describes one limiter decision.
type Result struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// Limiter answers whether a keyed caller may proceed within the current
// window.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}
