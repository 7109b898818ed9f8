// Copyright (c) 2025 Quantsweep Corp

// Package config loads and validates the TOML experiment description that
// drives one parameter-sweep run.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/pelletier/go-toml/v2"

	"github.com/quantsweep/sweepbt"
	"github.com/quantsweep/sweepbt/sampler"
)

// DataConfig names the tick source for an experiment.
type DataConfig struct {
	Path string `toml:"path"`
}

// OptimizationConfig drives the parameter-space sampler.
type OptimizationConfig struct {
	Method          string `toml:"method"`
	Samples         int    `toml:"samples"`
	Seed            *int64 `toml:"seed"`
	ParallelWorkers int    `toml:"parallel_workers"`
}

// parameterSpaceDoc mirrors one `[parameters.<name>]` table on the wire.
type parameterSpaceDoc struct {
	Type         string   `toml:"type"`
	Distribution string   `toml:"distribution"`
	Min          *float64 `toml:"min"`
	Max          *float64 `toml:"max"`
	Values       []any    `toml:"values"`
}

// ExperimentConfig is the fully resolved, immutable description of one
// sweep, loaded once by Load.
type ExperimentConfig struct {
	ExperimentName string
	Strategy       string
	Data           DataConfig
	Optimization   OptimizationConfig
	Parameters     sampler.ParameterSpace
	Constraints    map[string]float64
}

type rawDoc struct {
	ExperimentName string                        `toml:"experiment_name"`
	Strategy       string                         `toml:"strategy"`
	Data           DataConfig                     `toml:"data"`
	Optimization   OptimizationConfig             `toml:"optimization"`
	Parameters     map[string]parameterSpaceDoc   `toml:"parameters"`
	Constraints    map[string]float64             `toml:"constraints"`
}

// Load reads and validates the TOML file at path into an ExperimentConfig.
// Every validation failure is returned as a *sweepbt.ConfigError naming the
// offending field.
func Load(path string) (*ExperimentConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, sweepbt.NewConfigError("path", err)
	}
	return Parse(raw)
}

// Parse validates and decodes raw TOML bytes into an ExperimentConfig.
// Exported separately from Load so callers that already hold the document
// (e.g. the MCP run_experiment tool, which receives TOML text inline)
// don't need a temp file.
func Parse(raw []byte) (*ExperimentConfig, error) {
	var doc rawDoc
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, sweepbt.NewConfigError("document", err)
	}

	if doc.Strategy == "" {
		return nil, sweepbt.NewConfigError("strategy", fmt.Errorf("strategy is required"))
	}
	if doc.Optimization.Samples < 1 {
		return nil, sweepbt.NewConfigError("optimization.samples", fmt.Errorf("samples must be >= 1, got %d", doc.Optimization.Samples))
	}
	method, err := sweepbt.OptMethodFromString(orDefault(doc.Optimization.Method, "grid"))
	if err != nil {
		return nil, sweepbt.NewConfigError("optimization.method", err)
	}

	order := parameterOrder(raw)
	space := make(sampler.ParameterSpace, 0, len(doc.Parameters))
	for _, name := range order {
		p, ok := doc.Parameters[name]
		if !ok {
			continue
		}
		descriptor, err := resolveDescriptor(p)
		if err != nil {
			return nil, sweepbt.NewConfigError("parameters."+name, err)
		}
		space = append(space, sampler.Entry{Name: name, Descriptor: descriptor})
	}
	// Any parameter the text scan missed (e.g. quoted or bracket-style TOML
	// keys the regexp doesn't recognize) is still included, appended after
	// the scanned order, so no declared parameter is silently dropped.
	seen := make(map[string]bool, len(space))
	for _, e := range space {
		seen[e.Name] = true
	}
	for name, p := range doc.Parameters {
		if seen[name] {
			continue
		}
		descriptor, err := resolveDescriptor(p)
		if err != nil {
			return nil, sweepbt.NewConfigError("parameters."+name, err)
		}
		space = append(space, sampler.Entry{Name: name, Descriptor: descriptor})
	}

	cfg := &ExperimentConfig{
		ExperimentName: doc.ExperimentName,
		Strategy:       doc.Strategy,
		Data:           doc.Data,
		Optimization: OptimizationConfig{
			Method:          method.String(),
			Samples:         doc.Optimization.Samples,
			Seed:            doc.Optimization.Seed,
			ParallelWorkers: doc.Optimization.ParallelWorkers,
		},
		Parameters:  space,
		Constraints: doc.Constraints,
	}
	if cfg.ExperimentName == "" {
		cfg.ExperimentName = "unnamed"
	}
	if cfg.Optimization.ParallelWorkers < 1 {
		cfg.Optimization.ParallelWorkers = 1
	}
	return cfg, nil
}

func resolveDescriptor(p parameterSpaceDoc) (sampler.Descriptor, error) {
	class, err := sweepbt.ParamClassFromString(orDefault(p.Type, "float"))
	if err != nil {
		return sampler.Descriptor{}, err
	}
	dist, err := sweepbt.ParamDistributionFromString(orDefault(p.Distribution, "uniform"))
	if err != nil {
		return sampler.Descriptor{}, err
	}
	if len(p.Values) == 0 && (p.Min == nil || p.Max == nil) {
		return sampler.Descriptor{}, fmt.Errorf("requires either values or min/max")
	}

	d := sampler.Descriptor{Class: class, Distribution: dist, Values: p.Values}
	if p.Min != nil {
		d.Min = *p.Min
	}
	if p.Max != nil {
		d.Max = *p.Max
	}
	return d, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

var parameterTableHeader = regexp.MustCompile(`(?m)^\s*\[parameters\.([A-Za-z0-9_-]+)\]\s*$`)

// parameterOrder scans raw TOML text for `[parameters.<name>]` table
// headers in declaration order, since go-toml's map decode does not
// preserve key order and §4.D's sampler requires it.
func parameterOrder(raw []byte) []string {
	matches := parameterTableHeader.FindAllSubmatch(raw, -1)
	order := make([]string, 0, len(matches))
	for _, m := range matches {
		order = append(order, string(m[1]))
	}
	return order
}
