package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/crypto"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/ratelimit"
	"github.com/MKhiriev/go-user-auth/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidRole:         http.StatusBadRequest,
	errInvalidJSON:                 http.StatusBadRequest,

	service.ErrEmailAlreadyExists: http.StatusConflict,

	service.ErrNotRegistered: http.StatusNotFound,
	service.ErrUserNotFound:  http.StatusNotFound,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrEmailNotVerified:   http.StatusUnauthorized,
	crypto.ErrTokenInvalid:        http.StatusUnauthorized,
	crypto.ErrTokenExpired:        http.StatusUnauthorized,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	ErrRoleNotFound: http.StatusForbidden,
	ErrForbidden:    http.StatusForbidden,

	ratelimit.ErrRateLimited: http.StatusTooManyRequests,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Bad requests carry the
// full error text; other known errors only their sentinel text; anything
// unknown is an opaque 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	switch {
	case status == http.StatusInternalServerError:
		log.Err(err).Msg("unexpected error occurred")
		http.Error(w, http.StatusText(status), status)
	case status == http.StatusBadRequest:
		log.Debug().Err(err).Msg("request rejected")
		http.Error(w, err.Error(), status)
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
		http.Error(w, sentinelMessage(err), status)
	}
}

func sentinelMessage(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}
