// Copyright (c) 2025 Quantsweep Corp
//
// This is a Model Context Protocol (MCP) server exposing the parameter-
// sweep backtest engine to LLM tool callers: listing registered
// strategies and running a full sweep from an inline TOML config.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcp_server "github.com/mark3labs/mcp-go/server"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/pflag"

	"github.com/quantsweep/sweepbt"
	"github.com/quantsweep/sweepbt/config"
	"github.com/quantsweep/sweepbt/engine"
	"github.com/quantsweep/sweepbt/report"
	"github.com/quantsweep/sweepbt/sampler"
	"github.com/quantsweep/sweepbt/strategy"
)

const (
	serverName    = "sweepbt-mcp"
	serverVersion = "0.0.1"

	defaultSSEHostPort = ":8890"
)

var (
	logger   *slog.Logger
	registry *strategy.Registry
)

func main() {
	var useSSE bool
	var sseHostPort string
	var verbose bool
	var showHelp bool

	pflag.BoolVarP(&useSSE, "sse", "", false, "Use SSE transport (default is STDIO transport)")
	pflag.StringVarP(&sseHostPort, "port", "p", defaultSSEHostPort, "host:port to listen for SSE connections")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help")
	pflag.Parse()

	if showHelp {
		fmt.Fprintf(os.Stdout, "usage: %s [opts]\n\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	registry = strategy.RegisterAll()

	if err := run(useSSE, sseHostPort); err != nil {
		logger.Error("run loop error", "error", err.Error())
		os.Exit(1)
	}
}

func run(useSSE bool, sseHostPort string) error {
	mcpServer := mcp_server.NewMCPServer(serverName, serverVersion)
	registerTools(mcpServer)

	if useSSE {
		sseServer := mcp_server.NewSSEServer(mcpServer)
		logger.Info("MCP SSE server started", "hostPort", sseHostPort)
		if err := sseServer.Start(sseHostPort); err != nil {
			return fmt.Errorf("MCP SSE server error: %w", err)
		}
		return nil
	}

	logger.Info("MCP STDIO server started")
	if err := mcp_server.ServeStdio(mcpServer); err != nil {
		return fmt.Errorf("MCP STDIO server error: %w", err)
	}
	return nil
}

func registerTools(mcpServer *mcp_server.MCPServer) {
	mcpServer.AddTool(
		mcp.NewTool("list_strategies",
			mcp.WithDescription("Lists the names of every registered backtest strategy, in registration order. Use these names as the strategy field of run_experiment."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
		),
		listStrategiesHandler,
	)

	mcpServer.AddTool(
		mcp.NewTool("run_experiment",
			mcp.WithDescription("Runs a full parameter-sweep backtest experiment from an inline TOML config string and returns the ranked results as JSON."),
			mcp.WithReadOnlyHintAnnotation(false),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(false),
			mcp.WithString("config_toml",
				mcp.Required(),
				mcp.Description("The full contents of an experiment TOML config (experiment_name, strategy, data.path, optimization, parameters)."),
			),
		),
		runExperimentHandler,
	)
}

func listStrategiesHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jbytes, err := json.Marshal(registry.Names())
	if err != nil {
		return mcp.NewToolResultErrorf("failed to marshal strategy names: %s", err), nil
	}
	return mcp.NewToolResultText(string(jbytes)), nil
}

func runExperimentHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tomlStr, err := request.RequireString("config_toml")
	if err != nil {
		return mcp.NewToolResultError("config_toml must be set"), nil
	}

	cfg, err := config.Parse([]byte(tomlStr))
	if err != nil {
		return mcp.NewToolResultErrorf("invalid config: %s", err), nil
	}

	method, err := sweepbt.OptMethodFromString(cfg.Optimization.Method)
	if err != nil {
		return mcp.NewToolResultErrorf("invalid optimization method: %s", err), nil
	}

	stats, err := engine.Run(ctx, registry, engine.RunConfig{
		StrategyName: cfg.Strategy,
		Space:        cfg.Parameters,
		Sampler: sampler.Config{
			Method:  method,
			Samples: cfg.Optimization.Samples,
			Seed:    cfg.Optimization.Seed,
		},
		DataPath: cfg.Data.Path,
	})
	if err != nil {
		return mcp.NewToolResultErrorf("experiment failed: %s", err), nil
	}

	result := report.Assemble(cfg.ExperimentName, cfg.Strategy, stats, time.Now().UTC().Format(time.RFC3339))
	jbytes, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultErrorf("failed to marshal results: %s", err), nil
	}

	logger.Info("run_experiment", "experiment", cfg.ExperimentName, "strategy", cfg.Strategy, "instances", len(stats))
	return mcp.NewToolResultText(string(jbytes)), nil
}
