// Copyright (c) 2025 Quantsweep Corp

// Package strategy defines the lifecycle contract every backtested
// strategy implements, a base with the shared cash/position bookkeeping,
// an explicit registry, and the reference strategies that exercise the
// engine.
package strategy

import "context"

// Stats is the scalar metric mapping a strategy reports at the end of a
// run. Every implementation reports at least "name", "roi", and "trades".
type Stats map[string]any

// Strategy is the lifecycle every backtested configuration implements.
// OnTicks must be side-effect-free on its input slices: it observes a
// read-only view shared across every strategy instance in the run.
type Strategy interface {
	SetParams(params map[string]any)
	OnStart(ctx context.Context) error
	OnTicks(prices, qtys []float64, sides []int8, ctx context.Context) error
	OnFinish(ctx context.Context) error
	GetStats() Stats
}

// Constructor builds a named Strategy instance. Name is the config's
// per-instance label (e.g. "Config_3"), assigned by the executor.
type Constructor func(name string) Strategy
