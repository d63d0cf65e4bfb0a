// Package ratelimit throttles repeated requests per key with fixed-window
// counters kept in Redis. Keys are opaque to the limiter; callers build them
// from the client address and the throttled operation.
package ratelimit

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/ratelimit_mock.go -package=mock

// Limiter counts one attempt for key and reports whether it is allowed.
// A denied attempt returns [ErrRateLimited].
type Limiter interface {
	Allow(ctx context.Context, key string) error
}
