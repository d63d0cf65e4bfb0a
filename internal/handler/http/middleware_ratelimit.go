package http

import (
	"errors"
	"net"
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/ratelimit"
	"github.com/MKhiriev/go-user-auth/internal/utils"
)

const (
	scopeLogin              = "login"
	scopeForgotPassword     = "forgot-password"
	scopeResendVerification = "resend-verification"
)

// throttle counts each request against the client address for scope.
// Requests over the limit get 429. When the limiter backend is down the
// request goes through.
func (h *Handler) throttle(scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			err := h.limiter.Allow(r.Context(), throttleKey(scope, clientIP(r)))
			switch {
			case err == nil:
			case errors.Is(err, ratelimit.ErrRateLimited):
				log.Warn().Str("scope", scope).Msg("rate limit exceeded")
				http.Error(w, ratelimit.ErrRateLimited.Error(), http.StatusTooManyRequests)
				return
			default:
				log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable, request allowed")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// throttleKey keeps raw client addresses out of the limiter backend.
func throttleKey(scope, ip string) string {
	return scope + ":" + utils.HashString(ip, scope)
}

// clientIP returns the host part of RemoteAddr, already rewritten by
// middleware.RealIP when a proxy header is present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
