package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

const maxBodyBytes = 1 << 20

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var registration models.Registration
	if !decodeJSON(w, r, &registration) {
		return
	}

	if err := h.services.AuthService.Register(r.Context(), registration); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Msg("user registered")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if !decodeJSON(w, r, &credentials) {
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, token, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing access token")
	}
}

// forgotPassword answers 200 for every well-formed email.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var request models.EmailRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	if err := h.services.AuthService.ForgotPassword(r.Context(), request.Email); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var reset models.PasswordReset
	if !decodeJSON(w, r, &reset) {
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), reset); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	if err := h.services.AuthService.VerifyEmail(r.Context(), token); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// resendVerification answers 200 for every well-formed email.
func (h *Handler) resendVerification(w http.ResponseWriter, r *http.Request) {
	var request models.EmailRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	if err := h.services.AuthService.ResendVerification(r.Context(), request.Email); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// decodeJSON reads the request body into v and answers 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", errInvalidJSON, err))
		return false
	}
	return true
}
