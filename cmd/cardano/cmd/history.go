// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     cmd
// Description: Shows, summarizes and prunes the evaluation history
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/msto63/cardano/internal/cardano/service"
	"github.com/msto63/cardano/internal/cardano/store"
	"github.com/spf13/cobra"
)

var (
	historyLimit      int
	historyOffset     int
	historyOperation  string
	historyErrorsOnly bool
	historySince      time.Duration
	historyStats      bool
	historyPrune      time.Duration
	historyAddr       string
	historyTimeout    time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Zeigt den Verlauf der Berechnungen",
	Long: `Zeigt die gespeicherten Berechnungen, neueste zuerst.

Ohne --addr wird die lokale Verlaufsdatenbank gelesen, mit --addr
der Verlauf eines laufenden Servers.

Beispiele:
  cardano history --limit 10
  cardano history --op div --errors
  cardano history --since 1h
  cardano history --stats
  cardano history --prune 720h`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Maximale Anzahl Einträge (default aus Config)")
	historyCmd.Flags().IntVar(&historyOffset, "offset", 0, "Einträge überspringen")
	historyCmd.Flags().StringVar(&historyOperation, "op", "", "Nur diese Operation")
	historyCmd.Flags().BoolVar(&historyErrorsOnly, "errors", false, "Nur fehlgeschlagene Berechnungen")
	historyCmd.Flags().DurationVar(&historySince, "since", 0, "Nur Einträge der letzten Dauer, z.B. 24h")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "Statistik statt Einträgen anzeigen")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0, "Einträge älter als diese Dauer löschen (nur lokal)")
	addRemoteFlags(historyCmd, &historyAddr, &historyTimeout)
}

// historySource is the local service or a remote client
type historySource interface {
	History(ctx context.Context, filter store.Filter) ([]*store.Entry, error)
	Stats(ctx context.Context) (*service.Stats, error)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	w := cmd.OutOrStdout()

	var source historySource
	if historyAddr != "" {
		if historyPrune > 0 {
			return fmt.Errorf("--prune ist nur lokal möglich")
		}
		client, err := dialServer(historyAddr, historyTimeout)
		if err != nil {
			return err
		}
		defer client.Close()
		source = client
	} else {
		svc, err := newLocalService(true)
		if err != nil {
			return err
		}
		defer svc.Close()

		if historyPrune > 0 {
			deleted, err := svc.Prune(ctx, historyPrune)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%d Einträge gelöscht\n", deleted)
			return nil
		}
		source = svc
	}

	if historyStats {
		stats, err := source.Stats(ctx)
		if err != nil {
			return err
		}
		return printStats(w, stats)
	}

	filter := store.Filter{
		Operation:  historyOperation,
		ErrorsOnly: historyErrorsOnly,
		Limit:      historyLimit,
		Offset:     historyOffset,
	}
	if historySince > 0 {
		filter.Since = time.Now().Add(-historySince)
	}

	entries, err := source.History(ctx, filter)
	if err != nil {
		return err
	}
	return printEntries(w, entries)
}

func printEntries(w io.Writer, entries []*store.Entry) error {
	if jsonOutput() {
		if entries == nil {
			entries = []*store.Entry{}
		}
		return writeJSON(w, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "Keine Einträge.")
		return nil
	}
	for _, e := range entries {
		req := service.Request{Operation: e.Operation, Operands: e.Operands, Scalar: e.Scalar}
		outcome := "= " + e.Rendered
		if e.Failed() {
			outcome = fmt.Sprintf("[-] %s: %s", e.ErrorCode, e.ErrorMessage)
		}
		fmt.Fprintf(w, "%s  %s %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"), describeRequest(req), outcome)
	}
	return nil
}

func printStats(w io.Writer, stats *service.Stats) error {
	if jsonOutput() {
		return writeJSON(w, map[string]interface{}{
			"total":        stats.Total,
			"failed":       stats.Failed,
			"by_operation": stats.ByOperation,
		})
	}

	fmt.Fprintln(w, headingStyle.Render("Verlauf"))
	fmt.Fprintf(w, "  Gesamt:        %d\n", stats.Total)
	fmt.Fprintf(w, "  Fehlgeschlagen: %d\n", stats.Failed)

	names := make([]string, 0, len(stats.ByOperation))
	for name := range stats.ByOperation {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ni, nj := stats.ByOperation[names[i]], stats.ByOperation[names[j]]
		if ni != nj {
			return ni > nj
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		fmt.Fprintf(w, "  %-14s %d\n", name, stats.ByOperation[name])
	}
	return nil
}
