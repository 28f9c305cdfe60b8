package server

import (
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestHealthServer_Serving(t *testing.T) {
	req := require.New(t)
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)
	ctx, cancel := context.WithCancel(context.Background())
	s := NewHealthServer(logs.GetLoggerFromLevel(slog.LevelError), 0)
	stopped := make(chan error, 1)
	go func() { stopped <- s.Serve(ctx, lis) }()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	req.NoError(err)
	defer func() { _ = conn.Close() }()
	client := healthpb.NewHealthClient(conn)

	// When the process runs, both services are serving
	for _, service := range []string{"", ServiceName} {
		callCtx, callCancel := context.WithTimeout(context.Background(), 2*time.Second)
		resp, err := client.Check(callCtx, &healthpb.HealthCheckRequest{Service: service}, grpc.WaitForReady(true))
		callCancel()
		req.NoError(err)
		req.Equal(healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	}

	// When the context ends, Serve returns cleanly
	cancel()
	select {
	case err := <-stopped:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		req.Fail("health server did not stop")
	}
}
