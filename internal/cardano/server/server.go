// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     server
// Description: gRPC server exposing the evaluation service
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package server

import (
	"context"
	"net"
	"time"

	mdwerror "github.com/msto63/cardano/foundation/core/error"
	"github.com/msto63/cardano/internal/cardano/service"
	coreGrpc "github.com/msto63/cardano/pkg/core/grpc"
	"github.com/msto63/cardano/pkg/core/health"
	"github.com/msto63/cardano/pkg/core/logging"
	"github.com/msto63/cardano/pkg/core/version"
	"google.golang.org/protobuf/types/known/structpb"
)

// Ensure Server implements CalculatorServer
var _ CalculatorServer = (*Server)(nil)

// Config holds server configuration
type Config struct {
	GRPC            coreGrpc.ServerConfig
	ShutdownTimeout time.Duration
	HealthInterval  time.Duration
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		GRPC:            coreGrpc.DefaultServerConfig(),
		ShutdownTimeout: 10 * time.Second,
		HealthInterval:  30 * time.Second,
	}
}

// Server is the Calculator gRPC server
type Server struct {
	service   *service.Service
	grpc      *coreGrpc.Server
	health    *health.Registry
	logger    *logging.Logger
	config    Config
	startTime time.Time
}

// New creates a new Calculator server around svc
func New(cfg Config, svc *service.Service) (*Server, error) {
	if svc == nil {
		return nil, mdwerror.New("service is required").
			WithCode(mdwerror.CodeServiceInitialization).
			WithOperation("server.New")
	}

	logger := logging.New("cardano-server")
	grpcServer := coreGrpc.NewServer(cfg.GRPC)

	healthRegistry := health.NewRegistry("cardano", version.Calculator)
	healthRegistry.Register(health.CountCheck("catalog", 1, func() int {
		return len(svc.Operations())
	}))
	healthRegistry.Register(health.PingCheck("history", svc.Ping))

	server := &Server{
		service:   svc,
		grpc:      grpcServer,
		health:    healthRegistry,
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}

	RegisterCalculatorServer(grpcServer.GRPCServer(), server)

	return server, nil
}

// RefreshHealth runs the health checks and publishes the result to the gRPC
// health service for the server and the Calculator service
func (s *Server) RefreshHealth(ctx context.Context) *health.Report {
	report := s.health.Publish(ctx, s.grpc.SetServingStatus, "", ServiceName)
	if report.Status != health.StatusHealthy {
		s.logger.Warn("Health degraded", "status", string(report.Status))
	}
	return report
}

// Start serves on the configured address until stopped
func (s *Server) Start() error {
	s.RefreshHealth(context.Background())
	s.logger.Info("Starting Cardano server", "addr", s.grpc.Address())
	return s.grpc.Start()
}

// Serve serves on an existing listener
func (s *Server) Serve(listener net.Listener) error {
	s.RefreshHealth(context.Background())
	return s.grpc.Serve(listener)
}

// Run serves until ctx is done, refreshing health periodically, then shuts
// down within the configured timeout
func (s *Server) Run(ctx context.Context) error {
	s.RefreshHealth(ctx)
	if err := s.grpc.StartAsync(); err != nil {
		return mdwerror.Wrap(err, "failed to start server").
			WithCode(mdwerror.CodeServiceUnavailable).
			WithOperation("server.Run")
	}
	s.logger.Info("Cardano server started", "addr", s.grpc.Address())

	interval := s.config.HealthInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Stop()
			return nil
		case <-ticker.C:
			s.RefreshHealth(ctx)
		}
	}
}

// Stop shuts the server down gracefully within the shutdown timeout
func (s *Server) Stop() {
	s.logger.Info("Stopping Cardano server", "uptime", time.Since(s.startTime).Round(time.Second).String())

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.grpc.StopWithTimeout(ctx)
}

// Address returns the listen address
func (s *Server) Address() string {
	return s.grpc.Address()
}

// Evaluate implements CalculatorServer.Evaluate
func (s *Server) Evaluate(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := DecodeEvaluateRequest(in)
	if err != nil {
		return nil, err
	}

	result, err := s.service.Evaluate(ctx, req)
	if err != nil {
		return nil, err
	}
	return EncodeResult(result)
}

// ListOperations implements CalculatorServer.ListOperations. An optional
// "group" field restricts the listing.
func (s *Server) ListOperations(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	group, err := stringField(in.AsMap(), "group")
	if err != nil {
		return nil, err
	}

	ops := s.service.Operations()
	if group != "" {
		filtered := ops[:0]
		for _, op := range ops {
			if op.Group == group {
				filtered = append(filtered, op)
			}
		}
		ops = filtered
	}
	return EncodeOperations(ops)
}

// History implements CalculatorServer.History
func (s *Server) History(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	filter, err := DecodeFilter(in)
	if err != nil {
		return nil, err
	}

	entries, err := s.service.History(ctx, filter)
	if err != nil {
		return nil, err
	}
	return EncodeEntries(entries)
}

// Stats implements CalculatorServer.Stats
func (s *Server) Stats(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	stats, err := s.service.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return EncodeStats(stats)
}
