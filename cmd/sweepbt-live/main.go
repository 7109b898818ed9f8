// Copyright (c) 2025 Quantsweep Corp

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/quantsweep/sweepbt/live"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("component", "live")

	rootCmd := &cobra.Command{
		Use:   "sweepbt-live",
		Short: "Fetch a one-shot BTC/USD(T) price snapshot across the modeled venues",
		RunE: func(cmd *cobra.Command, args []string) error {
			return snapshot(cmd.Context(), logger)
		},
	}

	if err := rootCmd.Execute(); err != nil {
		logger.Error("snapshot failed", "error", err)
		os.Exit(1)
	}
}

func snapshot(ctx context.Context, logger *slog.Logger) error {
	client := live.NewClient()
	quotes := client.Snapshot(ctx)
	logger.Info("snapshot complete", "venues_reporting", len(quotes), "venues_total", len(live.Venues))

	if len(quotes) == 0 {
		fmt.Println("no venues reachable")
		return nil
	}

	sort.Slice(quotes, func(i, j int) bool { return quotes[i].Venue < quotes[j].Venue })
	for _, q := range quotes {
		fmt.Printf("%-12s %.2f\n", q.Venue, q.Price)
	}
	return nil
}
