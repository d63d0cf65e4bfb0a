package http

import (
	"time"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/ratelimit"
	"github.com/MKhiriev/go-user-auth/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  ratelimit.Limiter

	// superuserRole passes every role check.
	superuserRole  string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter ratelimit.Limiter, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	if limiter == nil {
		limiter = ratelimit.Noop()
	}
	return &Handler{
		services:       services,
		limiter:        limiter,
		superuserRole:  cfg.App.SuperuserRole,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
