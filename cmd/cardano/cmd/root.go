// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     cmd
// Description: Root command, configuration and shared helpers of the CLI
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	mdwerror "github.com/msto63/cardano/foundation/core/error"
	"github.com/msto63/cardano/internal/cardano/service"
	"github.com/msto63/cardano/pkg/core/config"
	"github.com/msto63/cardano/pkg/core/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cardano",
	Short: "Cardano - Komplexe Arithmetik",
	Long: `Cardano rechnet mit komplexen Zahlen: Grundrechenarten, Wurzeln,
Exponential- und Logarithmusfunktionen, trigonometrische und
hyperbolische Funktionen samt Umkehrfunktionen.

Komplexe Operanden werden als Real- und Imaginärteil angegeben,
reelle Werte als einzelne Zahl. pi und e sind als Konstanten erlaubt.

Beispiele:
  cardano eval add 1 2 3 4      # (1+2i) + (3+4i)
  cardano eval sqrtReal -4      # Wurzel einer negativen reellen Zahl
  cardano serve                  # gRPC-Server starten
  cardano call abs 3 4           # Über den Server rechnen`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $CARDANO_CONFIG oder ./configs/cardano.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Ausgabeformat: text oder json (default aus Config)")
}

// loadConfig reads the configuration and applies the logging defaults
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}

	if outputFormat != "" {
		if outputFormat != "text" && outputFormat != "json" {
			return mdwerror.Newf("unbekanntes Ausgabeformat %q", outputFormat).
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cli.format")
		}
		cfg.Format.Output = outputFormat
	}

	level := cfg.General.LogLevel
	if verbose {
		level = "trace"
	}
	logging.SetDefaults(logging.LoggerConfig{
		Level:  level,
		Format: cfg.General.LogFormat,
		Output: cmd.ErrOrStderr(),
	})

	appConfig = cfg
	return nil
}

// currentConfig returns the loaded configuration, defaults when a command
// runs without the root pre-run
func currentConfig() *config.Config {
	if appConfig == nil {
		appConfig = config.Default()
	}
	return appConfig
}

func jsonOutput() bool {
	return currentConfig().Format.Output == "json"
}

// newLocalService creates the evaluation service from the configuration
func newLocalService(withHistory bool) (*service.Service, error) {
	cfg := currentConfig()

	svcCfg := service.DefaultConfig()
	svcCfg.Pattern = cfg.Format.Pattern
	svcCfg.HistoryLimit = cfg.History.Limit
	svcCfg.Retention = cfg.History.Retention.Duration
	if withHistory {
		svcCfg.HistoryPath = cfg.HistoryPath()
	}
	svcCfg.Logger = logging.New("cardano")

	return service.NewService(svcCfg)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printError(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Fehler: %v\n", err)
	if verbose {
		if mdwErr, ok := err.(*mdwerror.Error); ok {
			fmt.Fprintf(w, "  Code: %s\n", mdwErr.Code())
			for k, v := range mdwErr.Details() {
				fmt.Fprintf(w, "  %s: %v\n", k, v)
			}
			if root := mdwErr.RootCause(); root != error(mdwErr) {
				fmt.Fprintf(w, "  Ursache: %v\n", root)
			}
		}
	}
}
