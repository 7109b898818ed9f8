// Copyright (c) 2025 Quantsweep Corp

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/quantsweep/sweepbt/report"
)

var (
	storePath   string
	metric      string
	topN        int
	strategyArg string
	experiment  string
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("component", "report")

	rootCmd := &cobra.Command{
		Use:   "sweepbt-report",
		Short: "Query the results store for the top parameter configurations of a sweep",
		RunE: func(cmd *cobra.Command, args []string) error {
			return queryTop(cmd.Context(), logger)
		},
	}
	rootCmd.Flags().StringVar(&storePath, "store", "sweepbt.duckdb", "path to the results store database")
	rootCmd.Flags().StringVar(&metric, "metric", "roi", "metric column to rank by")
	rootCmd.Flags().IntVarP(&topN, "top", "n", 10, "number of rows to show")
	rootCmd.Flags().StringVar(&strategyArg, "strategy", "", "restrict to a single strategy name")
	rootCmd.Flags().StringVar(&experiment, "experiment", "", "restrict to a single experiment id")

	if err := rootCmd.Execute(); err != nil {
		logger.Error("report failed", "error", err)
		os.Exit(1)
	}
}

func queryTop(ctx context.Context, logger *slog.Logger) error {
	store, err := report.OpenStore(storePath)
	if err != nil {
		return fmt.Errorf("opening results store: %w", err)
	}
	defer store.Close()

	rows, err := store.TopN(ctx, metric, topN, strategyArg, experiment)
	if err != nil {
		return fmt.Errorf("querying results store: %w", err)
	}
	logger.Info("query complete", "rows", len(rows))

	if len(rows) == 0 {
		fmt.Println("no results found")
		return nil
	}

	fmt.Printf("%-24s %-24s %-16s %10s %8s\n", "experiment", "strategy", "config", metric, "trades")
	for _, r := range rows {
		fmt.Printf("%-24s %-24s %-16s %10.4f %8s\n", r.ExperimentID, r.Strategy, r.Name, r.Metric, humanize.Comma(r.Trades))
	}
	return nil
}
