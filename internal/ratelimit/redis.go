// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "rl:"

// redisLimiter is a fixed-window counter: INCR, and EXPIRE on the first hit
// of a window.
type redisLimiter struct {
	redis       redis.UniversalClient
	maxAttempts int64
	window      time.Duration
}

// NewLimiter returns a Redis-backed [Limiter], or a no-op one when client is
// nil or throttling is disabled by a non-positive MaxAttempts.
func NewLimiter(client *redis.Client, cfg config.RateLimit, log *logger.Logger) Limiter {
	if client == nil || cfg.MaxAttempts <= 0 || cfg.Window <= 0 {
		log.Warn().Msg("rate limiting disabled")
		return Noop()
	}

	return &redisLimiter{
		redis:       client,
		maxAttempts: int64(cfg.MaxAttempts),
		window:      cfg.Window,
	}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) error {
	k := keyPrefix + key

	count, err := l.redis.Incr(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	if count == 1 {
		if err := l.redis.Expire(ctx, k, l.window).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
	}

	if count > l.maxAttempts {
		return ErrRateLimited
	}
	return nil
}
