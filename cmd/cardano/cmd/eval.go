// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     cmd
// Description: Local evaluation command
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/msto63/cardano/internal/cardano/catalog"
	"github.com/msto63/cardano/internal/cardano/service"
	"github.com/msto63/cardano/internal/cardano/store"
	"github.com/spf13/cobra"
)

var evalNoHistory bool

var evalCmd = &cobra.Command{
	Use:   "eval <operation> [zahlen...]",
	Short: "Berechnet eine Operation lokal",
	Long: `Berechnet eine Operation der Bibliothek lokal.

Jeder komplexe Operand wird als Real- und Imaginärteil angegeben,
ein reeller Wert als einzelne Zahl am Ende.

Beispiele:
  cardano eval add 1 2 3 4       # (1+2i) + (3+4i) = 4+6i
  cardano eval abs 3 4           # |3+4i| = 5
  cardano eval multReal 0.3 0.5 pi
  cardano eval asinReal -0.22

Flags müssen vor der Operation stehen, danach wird alles als Zahl gelesen.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().SetInterspersed(false)
	evalCmd.Flags().BoolVar(&evalNoHistory, "no-history", false, "Berechnung nicht im Verlauf speichern")
}

func runEval(cmd *cobra.Command, args []string) error {
	req, err := parseRequest(args)
	if err != nil {
		return err
	}

	svc, err := newLocalService(!evalNoHistory && !currentConfig().History.Disabled)
	if err != nil {
		return err
	}
	defer svc.Close()

	result, err := svc.Evaluate(context.Background(), req)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), req, result)
}

// parseRequest turns "op numbers..." into a request
func parseRequest(args []string) (service.Request, error) {
	op, err := catalog.Default().Lookup(args[0])
	if err != nil {
		return service.Request{}, err
	}
	parsed, err := op.ParseArgs(args[1:])
	if err != nil {
		return service.Request{}, err
	}
	return service.Request{Operation: op.Name, Operands: parsed.Operands, Scalar: parsed.Scalar}, nil
}

// resultJSON is the JSON form of a result
func resultJSON(r *service.Result) map[string]interface{} {
	out := map[string]interface{}{
		"operation":   r.Operation,
		"kind":        r.Value.Kind.String(),
		"rendered":    r.Rendered,
		"duration_ms": float64(r.Duration.Nanoseconds()) / 1e6,
	}
	switch r.Value.Kind {
	case catalog.ResultScalar:
		out["scalar"] = store.JSONNumber(&r.Value.Scalar)
	case catalog.ResultBool:
		out["bool"] = r.Value.Bool
	default:
		out["result"] = r.Value.Complex
	}
	if r.RequestID != "" {
		out["request_id"] = r.RequestID
	}
	return out
}

func printResult(w io.Writer, req service.Request, r *service.Result) error {
	if jsonOutput() {
		return writeJSON(w, resultJSON(r))
	}
	if verbose {
		fmt.Fprintf(w, "%s = %s  (%s)\n", describeRequest(req), r.Rendered, r.Duration)
		return nil
	}
	fmt.Fprintln(w, r.Rendered)
	return nil
}

// describeRequest renders a request as a call, e.g. "add(1+2i, 3+4i)"
func describeRequest(req service.Request) string {
	parts := make([]string, 0, len(req.Operands)+1)
	for _, z := range req.Operands {
		parts = append(parts, z.Format(currentConfig().Format.Pattern))
	}
	if req.Scalar != nil {
		parts = append(parts, fmt.Sprint(*req.Scalar))
	}
	return fmt.Sprintf("%s(%s)", req.Operation, strings.Join(parts, ", "))
}
