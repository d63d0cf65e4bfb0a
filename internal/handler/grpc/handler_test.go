package grpc

import (
	"bytes"
	"context"
	"net"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// startHealthServer serves h on an in-memory listener and returns a client.
func startHealthServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(h.ServerOptions()...)
	h.Register(s)

	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestHealth_Serving(t *testing.T) {
	client := startHealthServer(t, NewHandler(nil, logger.Nop()))

	for _, name := range []string{"", ServiceName} {
		resp, err := client.Check(t.Context(), &healthpb.HealthCheckRequest{Service: name})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus(), "service %q", name)
	}
}

func TestHealth_NotServingAfterShutdown(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startHealthServer(t, h)

	h.Shutdown()

	resp, err := client.Check(t.Context(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestHealth_UnknownService(t *testing.T) {
	client := startHealthServer(t, NewHandler(nil, logger.Nop()))

	_, err := client.Check(t.Context(), &healthpb.HealthCheckRequest{Service: "unknown.Service"})

	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestUnaryLoggingInterceptor_LogsCall(t *testing.T) {
	var buf bytes.Buffer
	interceptor := UnaryLoggingInterceptor(logger.NewWithWriter(&buf, "test"))

	ctx := metadata.NewIncomingContext(t.Context(), metadata.Pairs(traceIDKey, "trace-123"))
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	var handlerCtx context.Context
	resp, err := interceptor(ctx, "req", info, func(ctx context.Context, req any) (any, error) {
		handlerCtx = ctx
		return "resp", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "resp", resp)
	assert.NotNil(t, logger.FromContext(handlerCtx))

	out := buf.String()
	assert.Contains(t, out, `"method":"/grpc.health.v1.Health/Check"`)
	assert.Contains(t, out, `"code":"OK"`)
	assert.Contains(t, out, `"trace_id":"trace-123"`)
	assert.Contains(t, out, `"duration":`)
}

func TestUnaryLoggingInterceptor_LogsErrorCode(t *testing.T) {
	var buf bytes.Buffer
	interceptor := UnaryLoggingInterceptor(logger.NewWithWriter(&buf, "test"))
	info := &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}

	_, err := interceptor(t.Context(), nil, info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.Unavailable, "down")
	})

	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Contains(t, buf.String(), `"code":"Unavailable"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestTraceIDFromMetadata(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		wantSame string
	}{
		{name: "from metadata", ctx: metadata.NewIncomingContext(context.Background(), metadata.Pairs(traceIDKey, "abc")), wantSame: "abc"},
		{name: "no metadata", ctx: context.Background()},
		{name: "oversized id", ctx: metadata.NewIncomingContext(context.Background(), metadata.Pairs(traceIDKey, strings.Repeat("x", maxTraceIDLength+1)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := traceIDFromMetadata(tt.ctx)
			if tt.wantSame != "" {
				assert.Equal(t, tt.wantSame, got)
				return
			}
			assert.Len(t, got, 36)
		})
	}
}
