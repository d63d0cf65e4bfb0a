package ratelimit

import "context"

type noopLimiter struct{}

// Noop returns a [Limiter] that allows everything.
func Noop() Limiter {
	return noopLimiter{}
}

func (noopLimiter) Allow(context.Context, string) error {
	return nil
}
