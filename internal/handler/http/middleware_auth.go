package http

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-user-auth/internal/crypto"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/MKhiriev/go-user-auth/internal/utils"
)

// authenticate is an HTTP middleware that enforces access-token
// authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseAccessToken] and, on success, stores the
// resolved [models.Identity] in the request context before delegating to the
// next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value is not a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token has expired ("token expired").
//   - The token fails any other check ("invalid token").
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ParseAccessToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, crypto.ErrTokenExpired):
				log.Debug().Err(err).Msg("token expired")
				http.Error(w, crypto.ErrTokenExpired.Error(), http.StatusUnauthorized)
			default:
				log.Debug().Err(err).Msg("error occurred during parsing token")
				http.Error(w, crypto.ErrTokenInvalid.Error(), http.StatusUnauthorized)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// requireRoles is an HTTP middleware that admits callers whose current role
// is in roles. It must run after [Handler.authenticate].
//
// The role is re-read from the credential store on every request, so a role
// change applies without a new login. The superuser role passes regardless
// of roles. A missing record or an empty role is answered with 403
// [ErrRoleNotFound].
func (h *Handler) requireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)
			ctx := r.Context()

			identity, ok := utils.GetIdentityFromContext(ctx)
			if !ok {
				log.Error().Msg("role check without an authenticated identity")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			user, err := h.services.AuthService.GetUser(ctx, identity.ID)
			if err != nil && !errors.Is(err, service.ErrUserNotFound) {
				writeError(w, r, err)
				return
			}
			if err != nil || user.Role == "" {
				log.Debug().Str("user_id", identity.ID).Msg("role not found")
				http.Error(w, ErrRoleNotFound.Error(), http.StatusForbidden)
				return
			}

			if user.Role != h.superuserRole && !slices.Contains(roles, user.Role) {
				log.Debug().Str("user_id", identity.ID).Str("role", user.Role).Strs("allowed", roles).Msg("role is not allowed")
				http.Error(w, ErrForbidden.Error(), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively. It returns the following
// sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the scheme is not "Bearer" or the
//     token part is missing entirely.
//   - [ErrEmptyToken] if the token part is blank.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
