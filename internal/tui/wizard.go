// Copyright (c) 2025 Quantsweep Corp

// Package tui is an interactive wizard for building and running a
// parameter-sweep experiment without hand-writing a TOML config first.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/quantsweep/sweepbt"
	"github.com/quantsweep/sweepbt/engine"
	"github.com/quantsweep/sweepbt/sampler"
	"github.com/quantsweep/sweepbt/strategy"
)

// wizardInputs collects raw string answers from the huh form before
// they're parsed into a sampler.ParameterSpace and engine.RunConfig.
type wizardInputs struct {
	experimentName string
	strategyName   string
	dataPath       string
	method         string
	samplesStr     string
	paramsRaw      string
}

// parseParameterSpecs parses the wizard's free-form parameter field, a
// comma-separated list of "name:min:max" entries, into a space in which
// every parameter is a uniform float.
func parseParameterSpecs(raw string) (sampler.ParameterSpace, error) {
	var space sampler.ParameterSpace
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return space, nil
	}
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		parts := strings.Split(field, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("parameter entry %q: want name:min:max", field)
		}
		name := strings.TrimSpace(parts[0])
		min, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: bad min %q: %w", name, parts[1], err)
		}
		max, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: bad max %q: %w", name, parts[2], err)
		}
		space = append(space, sampler.Entry{
			Name: name,
			Descriptor: sampler.Descriptor{
				Class:        sweepbt.ParamClass_Float,
				Distribution: sweepbt.ParamDistribution_Uniform,
				Min:          min,
				Max:          max,
			},
		})
	}
	return space, nil
}

// RunWizard prompts interactively for an experiment definition via a huh
// form, then hands off to the bubbletea progress/results view while the
// experiment runs against registry.
func RunWizard(ctx context.Context, registry *strategy.Registry) error {
	in := wizardInputs{
		experimentName: "interactive-sweep",
		method:         "grid",
		samplesStr:     "20",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Experiment name").
				Value(&in.experimentName),
			huh.NewSelect[string]().
				Title("Strategy").
				Options(stringOptions(registry.Names())...).
				Value(&in.strategyName),
			huh.NewInput().
				Title("Tick data path (CSV, optionally .gz/.zst)").
				Value(&in.dataPath),
			huh.NewSelect[string]().
				Title("Sampling method").
				Options(huh.NewOption("grid", "grid"), huh.NewOption("monte_carlo", "monte_carlo")).
				Value(&in.method),
			huh.NewInput().
				Title("Number of configurations to sample").
				Value(&in.samplesStr),
			huh.NewText().
				Title("Parameters (name:min:max, comma separated)").
				Value(&in.paramsRaw),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("wizard form: %w", err)
	}

	samples, err := strconv.Atoi(strings.TrimSpace(in.samplesStr))
	if err != nil {
		return fmt.Errorf("bad sample count %q: %w", in.samplesStr, err)
	}
	method, err := sweepbt.OptMethodFromString(in.method)
	if err != nil {
		return fmt.Errorf("resolving sampling method: %w", err)
	}
	space, err := parseParameterSpecs(in.paramsRaw)
	if err != nil {
		return err
	}

	cfg := engine.RunConfig{
		StrategyName: in.strategyName,
		Space:        space,
		Sampler: sampler.Config{
			Method:  method,
			Samples: samples,
		},
		DataPath: in.dataPath,
	}

	return runProgressView(ctx, registry, cfg)
}

func stringOptions(names []string) []huh.Option[string] {
	opts := make([]huh.Option[string], len(names))
	for i, n := range names {
		opts[i] = huh.NewOption(n, n)
	}
	return opts
}
