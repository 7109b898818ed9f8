// Copyright (c) 2025 Quantsweep Corp

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantsweep/sweepbt"
	"github.com/quantsweep/sweepbt/config"
	"github.com/quantsweep/sweepbt/engine"
	"github.com/quantsweep/sweepbt/report"
	"github.com/quantsweep/sweepbt/sampler"
	"github.com/quantsweep/sweepbt/strategy"
)

var (
	configPath string
	reportsDir string
	storePath  string
	batchSize  int
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("component", "run")

	rootCmd := &cobra.Command{
		Use:   "sweepbt-run",
		Short: "Run a parameter-sweep backtest experiment from a TOML config",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExperiment(cmd.Context(), logger)
		},
	}
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the experiment TOML config (required)")
	rootCmd.Flags().StringVar(&reportsDir, "reports-dir", "reports", "directory to write JSON reports under")
	rootCmd.Flags().StringVar(&storePath, "store", "sweepbt.duckdb", "path to the results store database")
	rootCmd.Flags().IntVar(&batchSize, "batch-size", 0, "tick batch size (0 uses the default)")
	rootCmd.MarkFlagRequired("config")

	if err := rootCmd.Execute(); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func runExperiment(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.Info("config loaded", "experiment", cfg.ExperimentName, "strategy", cfg.Strategy)

	registry := strategy.RegisterAll()

	method, err := sweepbt.OptMethodFromString(cfg.Optimization.Method)
	if err != nil {
		return fmt.Errorf("resolving optimization method: %w", err)
	}

	stats, err := engine.Run(ctx, registry, engine.RunConfig{
		StrategyName: cfg.Strategy,
		Space:        cfg.Parameters,
		Sampler: sampler.Config{
			Method:  method,
			Samples: cfg.Optimization.Samples,
			Seed:    cfg.Optimization.Seed,
		},
		DataPath:  cfg.Data.Path,
		BatchSize: batchSize,
	})
	if err != nil {
		return fmt.Errorf("running experiment: %w", err)
	}
	logger.Info("experiment complete", "instances", len(stats))

	result := report.Assemble(cfg.ExperimentName, cfg.Strategy, stats, time.Now().UTC().Format(time.RFC3339))

	path, err := report.WriteJSON(reportsDir, result)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logger.Info("report written", "path", path)

	store, err := report.OpenStore(storePath)
	if err != nil {
		return fmt.Errorf("opening results store: %w", err)
	}
	defer store.Close()
	if err := store.Append(ctx, result); err != nil {
		return fmt.Errorf("appending to results store: %w", err)
	}

	fmt.Println(report.ConsoleTable(result))
	return nil
}
