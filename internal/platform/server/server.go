package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	archivepb "github.com/ogurasousui/sistemadp/internal/adapters/grpc/gen/archive/v1"
	auditpb "github.com/ogurasousui/sistemadp/internal/adapters/grpc/gen/audit/v1"
	terminationpb "github.com/ogurasousui/sistemadp/internal/adapters/grpc/gen/termination/v1"
	"github.com/ogurasousui/sistemadp/internal/platform/logging"
)

// Services はサーバーに登録する gRPC サービスです。nil のサービスは登録しません。
type Services struct {
	Archive     archivepb.ArchiveServiceServer
	Audit       auditpb.AuditServiceServer
	Termination terminationpb.TerminationServiceServer
}

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
	health     *health.Server
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
// ロギングインターセプタとヘルスチェックサービスを組み込みます。
func New(listenAddr string, services Services, logger *slog.Logger, opts ...grpc.ServerOption) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(UnaryLoggingInterceptor(logger))}, opts...)
	srv := grpc.NewServer(opts...)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	if services.Archive != nil {
		archivepb.RegisterArchiveServiceServer(srv, services.Archive)
		hs.SetServingStatus(archivepb.ArchiveService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	}
	if services.Audit != nil {
		auditpb.RegisterAuditServiceServer(srv, services.Audit)
		hs.SetServingStatus(auditpb.AuditService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	}
	if services.Termination != nil {
		terminationpb.RegisterTerminationServiceServer(srv, services.Termination)
		hs.SetServingStatus(terminationpb.TerminationService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	}
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
		health:     hs,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve は指定されたリスナーで待ち受けます。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		s.GracefulStop()
	}()

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はヘルスチェックを NOT_SERVING にしてからサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
