package handler

import (
	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/handler/grpc"
	"github.com/MKhiriev/go-user-auth/internal/handler/http"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/ratelimit"
	"github.com/MKhiriev/go-user-auth/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, limiter ratelimit.Limiter, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, limiter, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
