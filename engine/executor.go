// Copyright (c) 2025 Quantsweep Corp

// Package engine drives a single pass over a tick stream, fanning each
// batch out to every strategy instance in a sweep.
package engine

import (
	"context"
	"fmt"

	"github.com/quantsweep/sweepbt"
	"github.com/quantsweep/sweepbt/feed"
	"github.com/quantsweep/sweepbt/sampler"
	"github.com/quantsweep/sweepbt/strategy"
)

// RunConfig is everything one executor pass needs: which strategy to
// instantiate, how many configurations to sample, and where the tick
// data lives.
type RunConfig struct {
	StrategyName string
	Space        sampler.ParameterSpace
	Sampler      sampler.Config
	DataPath     string
	BatchSize    int
}

// Run resolves cfg.StrategyName against registry, samples cfg.Sampler.Samples
// parameter assignments, and streams cfg.DataPath through every resulting
// instance in a single pass, decoding each batch's columns exactly once.
// A cancelled ctx aborts the run between batches and returns ctx.Err();
// any strategy callback error aborts the run and discards partial stats.
func Run(ctx context.Context, registry *strategy.Registry, cfg RunConfig) ([]strategy.Stats, error) {
	ctor, ok := registry.Get(cfg.StrategyName)
	if !ok {
		return nil, sweepbt.NewConfigError("strategy", fmt.Errorf("%w: %q", sweepbt.ErrStrategyNotFound, cfg.StrategyName))
	}

	assignments, err := sampler.Sample(cfg.Space, cfg.Sampler)
	if err != nil {
		return nil, fmt.Errorf("sampling parameters: %w", err)
	}

	instances := make([]strategy.Strategy, len(assignments))
	aware := make([]strategy.SymbolAwareStrategy, len(assignments))
	for i, assignment := range assignments {
		inst := ctor(fmt.Sprintf("Config_%d", i))
		inst.SetParams(assignment)
		instances[i] = inst
		aware[i], _ = inst.(strategy.SymbolAwareStrategy)
	}

	for i, inst := range instances {
		if err := inst.OnStart(ctx); err != nil {
			return nil, sweepbt.NewStrategyError(instanceName(i), sweepbt.StrategyPhase_OnStart, err)
		}
	}

	symbols := sweepbt.NewSymbolTable()
	streamer, err := feed.Open(cfg.DataPath, cfg.BatchSize, symbols)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		batch, ok := streamer.Next()
		if !ok {
			break
		}
		if err := sweepbt.ValidateBatch(batch); err != nil {
			return nil, sweepbt.NewDataError(cfg.DataPath, err)
		}

		prices := make([]float64, batch.Len())
		qtys := make([]float64, batch.Len())
		sides := make([]int8, batch.Len())
		for i := 0; i < batch.Len(); i++ {
			prices[i] = sweepbt.ToReal(batch.Price[i])
			qtys[i] = sweepbt.ToReal(batch.Qty[i])
			sides[i] = int8(batch.Side[i])
		}

		for i, inst := range instances {
			var err error
			if aware[i] != nil {
				err = aware[i].OnTicksWithSymbols(prices, qtys, sides, batch.SymbolID, ctx)
			} else {
				err = inst.OnTicks(prices, qtys, sides, ctx)
			}
			if err != nil {
				return nil, sweepbt.NewStrategyError(instanceName(i), sweepbt.StrategyPhase_OnTicks, err)
			}
		}
	}
	if streamer.Err() != nil {
		return nil, streamer.Err()
	}

	for i, inst := range instances {
		if err := inst.OnFinish(ctx); err != nil {
			return nil, sweepbt.NewStrategyError(instanceName(i), sweepbt.StrategyPhase_OnFinish, err)
		}
	}

	stats := make([]strategy.Stats, len(instances))
	for i, inst := range instances {
		stats[i] = inst.GetStats()
	}
	return stats, nil
}

func instanceName(i int) string {
	return fmt.Sprintf("Config_%d", i)
}
