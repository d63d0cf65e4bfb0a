// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	traceIDKey       = "x-trace-id"
	maxTraceIDLength = 128
)

// UnaryLoggingInterceptor attaches a trace-scoped logger to the call context
// and logs method, status code and duration of every unary call.
func UnaryLoggingInterceptor(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		traceID := traceIDFromMetadata(ctx)
		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = l.WithContext(ctx)

		resp, err := handler(ctx, req)

		code := status.Code(err)
		event := l.Info()
		if err != nil {
			event = l.Warn().Err(err)
		}
		event.
			Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("duration", time.Since(start)).
			Send()

		return resp, err
	}
}

func traceIDFromMetadata(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 && values[0] != "" && len(values[0]) <= maxTraceIDLength {
			return values[0]
		}
	}
	return uuid.NewString()
}
