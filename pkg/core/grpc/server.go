// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     grpc
// Description: gRPC server wrapper with interceptors, health and reflection
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package grpc

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/msto63/cardano/pkg/core/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

var serverLogger = logging.New("grpc-server")

// ServerConfig holds gRPC server configuration
type ServerConfig struct {
	Host              string
	Port              int
	MaxRecvMsgSize    int
	MaxSendMsgSize    int
	EnableReflection  bool
	RequestTimeout    time.Duration
	KeepaliveInterval time.Duration
	KeepaliveTimeout  time.Duration
}

// DefaultServerConfig returns a default server configuration
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:              "127.0.0.1",
		Port:              9300,
		MaxRecvMsgSize:    4 * 1024 * 1024, // 4MB
		MaxSendMsgSize:    4 * 1024 * 1024, // 4MB
		EnableReflection:  true,
		RequestTimeout:    5 * time.Second,
		KeepaliveInterval: 30 * time.Second,
		KeepaliveTimeout:  10 * time.Second,
	}
}

// Server wraps a gRPC server with additional functionality
type Server struct {
	server *grpc.Server
	health *health.Server
	config ServerConfig

	mu       sync.Mutex
	listener net.Listener
}

// NewServer creates a new gRPC server with the standard health service
// registered
func NewServer(cfg ServerConfig, opts ...grpc.ServerOption) *Server {
	// Build server options
	serverOpts := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(cfg.MaxRecvMsgSize),
		grpc.MaxSendMsgSize(cfg.MaxSendMsgSize),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    cfg.KeepaliveInterval,
			Timeout: cfg.KeepaliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             5 * time.Second,
			PermitWithoutStream: true,
		}),
		grpc.ChainUnaryInterceptor(
			RecoveryInterceptor(),
			RequestIDInterceptor(),
			LoggingInterceptor(),
			TimeoutInterceptor(cfg.RequestTimeout),
			ErrorInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			StreamRecoveryInterceptor(),
			StreamLoggingInterceptor(),
		),
	}

	// Append custom options
	serverOpts = append(serverOpts, opts...)

	server := grpc.NewServer(serverOpts...)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	// Enable reflection for grpcurl and friends
	if cfg.EnableReflection {
		reflection.Register(server)
	}

	return &Server{
		server: server,
		health: healthServer,
		config: cfg,
	}
}

// GRPCServer returns the underlying gRPC server for service registration
func (s *Server) GRPCServer() *grpc.Server {
	return s.server
}

// SetServingStatus publishes the health of service. An empty name sets the
// overall server status.
func (s *Server) SetServingStatus(service string, serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(service, st)
}

// Start listens on the configured address and serves until stopped
func (s *Server) Start() error {
	listener, err := s.listen()
	if err != nil {
		return err
	}
	return s.Serve(listener)
}

// StartAsync starts the gRPC server in a goroutine
func (s *Server) StartAsync() error {
	listener, err := s.listen()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	go func() {
		if err := s.Serve(listener); err != nil {
			// Log error but don't panic - server might be shutting down
			serverLogger.Error("gRPC server error", "error", err)
		}
	}()

	return nil
}

// Serve serves on an existing listener, e.g. a bufconn in tests
func (s *Server) Serve(listener net.Listener) error {
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	serverLogger.Info("gRPC server listening", "addr", listener.Addr().String())
	return s.server.Serve(listener)
}

func (s *Server) listen() (net.Listener, error) {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return listener, nil
}

// Stop gracefully stops the gRPC server
func (s *Server) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}

// StopWithTimeout stops the server gracefully, forcing it down when ctx is
// done first
func (s *Server) StopWithTimeout(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return
	case <-ctx.Done():
		s.server.Stop()
	}
}

// Address returns the server address
func (s *Server) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}
