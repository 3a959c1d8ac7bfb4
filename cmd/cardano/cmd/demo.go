// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     cmd
// Description: Guided tour through the operation library
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"fmt"
	"math"

	"github.com/msto63/cardano/foundation/utils/cmplxx"
	"github.com/msto63/cardano/internal/cardano/service"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Führt eine Beispielrechnung vor",
	Long: `Rechnet eine Reihe typischer Operationen mit a = 0.3+0.5i,
b = 1-(pi/2)i und dem reellen Wert -1.2 vor. Der Verlauf wird
dabei nicht geschrieben.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// demoStep is one evaluation of the tour
type demoStep struct {
	label string
	req   service.Request
}

func scalar(f float64) *float64 {
	return &f
}

func demoSteps() []demoStep {
	a := cmplxx.New(0.3, 0.5)
	b := cmplxx.New(1, -math.Pi/2)
	polar := cmplxx.FromPolar(0.022, -0.223)

	return []demoStep{
		{"a + b", service.Request{Operation: "add", Operands: []cmplxx.Complex{a, b}}},
		{"a / b", service.Request{Operation: "div", Operands: []cmplxx.Complex{a, b}}},
		{"a + polar(0.022, -0.223)", service.Request{Operation: "add", Operands: []cmplxx.Complex{a, polar}}},
		{"|a|", service.Request{Operation: "abs", Operands: []cmplxx.Complex{a}}},
		{"sqrt(-2.3)", service.Request{Operation: "sqrtReal", Scalar: scalar(-2.3)}},
		{"asin(-0.22)", service.Request{Operation: "asinReal", Scalar: scalar(-0.22)}},
		{"a · pi", service.Request{Operation: "multReal", Operands: []cmplxx.Complex{a}, Scalar: scalar(math.Pi)}},
		{"a · (-1.2i)", service.Request{Operation: "multIm", Operands: []cmplxx.Complex{a}, Scalar: scalar(-1.2)}},
		{"a ^ e", service.Request{Operation: "powReal", Operands: []cmplxx.Complex{a}, Scalar: scalar(math.E)}},
		{"sin(a)", service.Request{Operation: "sin", Operands: []cmplxx.Complex{a}}},
		{"cosh(b)", service.Request{Operation: "cosh", Operands: []cmplxx.Complex{b}}},
		{"atan(a)", service.Request{Operation: "atan", Operands: []cmplxx.Complex{a}}},
		{"a / 0", service.Request{Operation: "div", Operands: []cmplxx.Complex{a, cmplxx.Zero()}}},
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	svc, err := newLocalService(false)
	if err != nil {
		return err
	}
	defer svc.Close()

	w := cmd.OutOrStdout()
	ctx := context.Background()
	steps := demoSteps()
	a, b := steps[0].req.Operands[0], steps[0].req.Operands[1]

	if !jsonOutput() {
		fmt.Fprintln(w, headingStyle.Render("Cardano Demo"))
		fmt.Fprintf(w, "  a = %s\n  b = %s\n\n", a, b)
	}

	results := make([]map[string]interface{}, 0, len(steps))
	for _, step := range steps {
		result, err := svc.Evaluate(ctx, step.req)

		if jsonOutput() {
			entry := map[string]interface{}{"step": step.label}
			if err != nil {
				entry["error"] = err.Error()
			} else {
				for k, v := range resultJSON(result) {
					entry[k] = v
				}
			}
			results = append(results, entry)
			continue
		}

		if err != nil {
			fmt.Fprintf(w, "  %-26s ✗ %v\n", step.label, err)
			continue
		}
		fmt.Fprintf(w, "  %-26s = %s\n", step.label, result.Rendered)
	}

	if jsonOutput() {
		return writeJSON(w, results)
	}
	return nil
}
