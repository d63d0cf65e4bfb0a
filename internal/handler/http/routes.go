package http

import (
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/reset-password", h.resetPassword)
		r.Get("/api/auth/verify-email", h.verifyEmail)
	})

	// throttled per client address
	router.Group(func(r chi.Router) {
		r.With(h.throttle(scopeLogin)).Post("/api/auth/login", h.login)
		r.With(h.throttle(scopeForgotPassword)).Post("/api/auth/forgot-password", h.forgotPassword)
		r.With(h.throttle(scopeResendVerification)).Post("/api/auth/resend-verification", h.resendVerification)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/api/users/me", h.me)
		r.With(h.requireRoles(models.RoleAdmin)).Patch("/api/users/{id}/role", h.updateRole)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
