package server

import (
	"chat-relay/contract"
	"context"
	"fmt"
	"log/slog"
	"net"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is reported next to the empty overall service.
const ServiceName = "chat-relay"

var _ contract.Worker = (*HealthServer)(nil)

// HealthServer exposes grpc.health.v1 for orchestrators probing the process.
// It runs as a supervised worker and stops serving when its context ends.
type HealthServer struct {
	log    *slog.Logger
	port   int
	health *health.Server
}

func NewHealthServer(log *slog.Logger, port int) *HealthServer {
	return &HealthServer{log: log, port: port, health: health.NewServer()}
}

func (s *HealthServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}
	return s.Serve(ctx, lis)
}

// Serve blocks on lis until ctx is done.
func (s *HealthServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(s.log)))
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	served := make(chan error, 1)
	go func() { served <- srv.Serve(lis) }()
	s.log.Info("gRPC health service listening", "addr", lis.Addr().String())

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		srv.GracefulStop()
		s.log.Info("gRPC health service stopped")
		return nil
	case err := <-served:
		return err
	}
}
