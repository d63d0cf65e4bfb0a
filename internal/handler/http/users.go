package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, identity.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing user")
	}
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	var change models.RoleChange
	if !decodeJSON(w, r, &change) {
		return
	}
	change.UserID = chi.URLParam(r, "id")

	if err := h.services.AuthService.UpdateRole(r.Context(), change); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", change.UserID).Str("role", change.Role).Msg("role updated")
	w.WriteHeader(http.StatusOK)
}
