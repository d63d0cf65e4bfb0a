// Package grpc exposes the gRPC surface of the service: the standard
// grpc.health.v1.Health service and a zerolog unary interceptor.
package grpc
