// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     cmd
// Description: Starts the gRPC calculator server
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/msto63/cardano/internal/cardano/server"
	"github.com/msto63/cardano/pkg/core/config"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Startet den gRPC-Server",
	Long: `Startet den Cardano gRPC-Server (cardano.v1.Calculator).

Der Server bietet Evaluate, ListOperations, History und Stats an,
außerdem den Standard-Health-Service und Reflection.

Beispiele:
  cardano serve
  cardano serve --port 9400
  grpcurl -plaintext localhost:9300 list`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen-Adresse (default aus Config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port (default aus Config)")
}

// serverConfig maps the configuration onto the server settings
func serverConfig(cfg *config.Config) server.Config {
	srvCfg := server.DefaultConfig()
	srvCfg.GRPC.Host = cfg.Server.Host
	srvCfg.GRPC.Port = cfg.Server.Port
	srvCfg.GRPC.EnableReflection = !cfg.Server.DisableReflection
	if cfg.Server.MaxRecvMsgSize > 0 {
		srvCfg.GRPC.MaxRecvMsgSize = cfg.Server.MaxRecvMsgSize
	}
	if cfg.Server.RequestTimeout.Duration > 0 {
		srvCfg.GRPC.RequestTimeout = cfg.Server.RequestTimeout.Duration
	}
	if cfg.Server.ShutdownTimeout.Duration > 0 {
		srvCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout.Duration
	}

	if serveHost != "" {
		srvCfg.GRPC.Host = serveHost
	}
	if servePort != 0 {
		srvCfg.GRPC.Port = servePort
	}
	return srvCfg
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()

	svc, err := newLocalService(!cfg.History.Disabled)
	if err != nil {
		return err
	}
	defer svc.Close()

	srvCfg := serverConfig(cfg)
	srv, err := server.New(srvCfg, svc)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Cardano")
	fmt.Fprintln(out, "=======")
	fmt.Fprintf(out, "gRPC-Server auf %s:%d (Strg+C beendet)\n", srvCfg.GRPC.Host, srvCfg.GRPC.Port)
	if svc.HistoryEnabled() {
		fmt.Fprintf(out, "Verlauf: %s\n", cfg.HistoryPath())
	}

	return srv.Run(ctx)
}
