package grpc

import (
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health-check name of the authentication service.
// The empty name reports the status of the whole server.
const ServiceName = "auth.v1.AuthService"

// Handler is the root gRPC transport handler.
//
// It owns the standard health service. Status starts as SERVING and flips
// to NOT_SERVING once [Handler.Shutdown] is called, so load balancers stop
// routing before connections are drained.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return h
}

// Register attaches every service of the handler to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// ServerOptions returns the interceptors every gRPC server of the
// application runs with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(UnaryLoggingInterceptor(h.logger)),
	}
}

// Shutdown marks every service NOT_SERVING. Later status updates are
// ignored.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health status set to NOT_SERVING")
	h.health.Shutdown()
}
