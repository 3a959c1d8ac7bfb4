// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     cmd
// Description: Starts the interactive calculator
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package cmd

import (
	"time"

	"github.com/msto63/cardano/internal/tui/calculator"
	"github.com/spf13/cobra"
)

var (
	tuiAddr    string
	tuiTimeout time.Duration
)

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"calc"},
	Short:   "Startet den interaktiven Rechner",
	Long: `Startet den interaktiven Rechner im Terminal.

Eingaben haben die Form "<operation> <zahlen...>", z.B. "pow 1 1 0 1".
Ohne --addr wird lokal gerechnet, mit --addr über den Server.

Tastenkuerzel:
  Enter       Berechnen
  ↑/↓         Frühere Eingaben
  PgUp/PgDn   Scrollen
  Esc/Ctrl+C  Beenden`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	addRemoteFlags(tuiCmd, &tuiAddr, &tuiTimeout)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := calculator.Config{Timeout: tuiTimeout}

	if tuiAddr != "" {
		client, err := dialServer(tuiAddr, tuiTimeout)
		if err != nil {
			return err
		}
		defer client.Close()
		cfg.Evaluator = client
		cfg.Source = tuiAddr
	} else {
		svc, err := newLocalService(!currentConfig().History.Disabled)
		if err != nil {
			return err
		}
		defer svc.Close()
		cfg.Evaluator = svc
	}

	return calculator.Run(cfg)
}
