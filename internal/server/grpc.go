package server

import (
	"context"
	"net"

	"github.com/MKhiriev/go-user-auth/internal/config"
	myGRPC "github.com/MKhiriev/go-user-auth/internal/handler/grpc"
	"github.com/MKhiriev/go-user-auth/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		server:  s,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}
	return g.serve(lis)
}

// serve returns nil once Shutdown has stopped the server.
func (g *grpcServer) serve(lis net.Listener) error {
	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	return g.server.Serve(lis)
}

// Shutdown reports NOT_SERVING first, then waits for in-flight calls until
// ctx expires.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.logger.Warn().Msg("gRPC server did not drain in time, stopping")
		g.server.Stop()
		return ctx.Err()
	}
}
