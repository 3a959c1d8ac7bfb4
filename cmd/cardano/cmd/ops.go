// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     cmd
// Description: Lists the available operations
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/cardano/internal/cardano/catalog"
	"github.com/spf13/cobra"
)

var opsGroup string

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))

var opsCmd = &cobra.Command{
	Use:     "ops",
	Aliases: []string{"operations", "list"},
	Short:   "Listet die verfügbaren Operationen",
	Long: `Listet alle Operationen mit Aufrufform, Gruppe und Beschreibung.

Beispiele:
  cardano ops
  cardano ops --group trig
  cardano ops --format json`,
	RunE: runOps,
}

func init() {
	rootCmd.AddCommand(opsCmd)
	opsCmd.Flags().StringVar(&opsGroup, "group", "", "Nur Operationen dieser Gruppe")
}

func runOps(cmd *cobra.Command, args []string) error {
	var ops []*catalog.Operation
	for _, op := range catalog.Default().Operations() {
		if opsGroup == "" || op.Group == opsGroup {
			ops = append(ops, op)
		}
	}

	w := cmd.OutOrStdout()
	if jsonOutput() {
		list := make([]map[string]string, 0, len(ops))
		for _, op := range ops {
			list = append(list, map[string]string{
				"name":        op.Name,
				"kind":        op.Kind.String(),
				"result":      op.Result.String(),
				"group":       op.Group,
				"usage":       op.Usage(),
				"description": op.Description,
			})
		}
		return writeJSON(w, list)
	}

	printOps(w, ops)
	return nil
}

func printOps(w io.Writer, ops []*catalog.Operation) {
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("%d Operationen", len(ops))))
	fmt.Fprintln(w)
	for _, op := range ops {
		fmt.Fprintf(w, "  %-26s %-20s %s\n", op.Usage(), op.Group, op.Description)
	}
}
