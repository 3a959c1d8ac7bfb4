// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     cmd
// Description: Remote evaluation through the gRPC server
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"time"

	"github.com/msto63/cardano/internal/cardano/server"
	"github.com/spf13/cobra"
)

var (
	callAddr    string
	callTimeout time.Duration
)

var callCmd = &cobra.Command{
	Use:   "call <operation> [zahlen...]",
	Short: "Berechnet eine Operation über den gRPC-Server",
	Long: `Berechnet eine Operation über einen laufenden Cardano-Server.

Die Argumente entsprechen "cardano eval". Fehler des Servers werden
mit ihrem Code angezeigt (--verbose zeigt die Details).

Beispiele:
  cardano call div 1 0 0 0
  cardano call --addr 10.0.0.5:9300 sqrt 3 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.Flags().SetInterspersed(false)
	addRemoteFlags(callCmd, &callAddr, &callTimeout)
}

func addRemoteFlags(cmd *cobra.Command, addr *string, timeout *time.Duration) {
	cmd.Flags().StringVar(addr, "addr", "", "Adresse des Servers (default aus Config)")
	cmd.Flags().DurationVar(timeout, "timeout", 5*time.Second, "Timeout für Verbindung und Aufruf")
}

// dialServer connects to addr or the configured server address
func dialServer(addr string, timeout time.Duration) (*server.Client, error) {
	if addr == "" {
		addr = currentConfig().ServerAddress()
	}
	return server.Dial(addr, timeout)
}

func runCall(cmd *cobra.Command, args []string) error {
	req, err := parseRequest(args)
	if err != nil {
		return err
	}

	client, err := dialServer(callAddr, callTimeout)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	result, err := client.Evaluate(ctx, req)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), req, result)
}
