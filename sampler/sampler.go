// Copyright (c) 2025 Quantsweep Corp

package sampler

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/quantsweep/sweepbt"
)

// ErrNonPositiveLogUniformBound is returned by Sample when a log_uniform
// descriptor's Min is not strictly positive.
var ErrNonPositiveLogUniformBound = fmt.Errorf("log_uniform distribution requires min > 0")

// Config drives one call to Sample: Method selects grid or Monte Carlo
// (both draw N independent assignments in this engine — true Cartesian
// grid enumeration is an accepted simplification), Samples is N, and Seed
// pins the RNG for reproducibility. A nil Seed draws from system entropy.
type Config struct {
	Method  sweepbt.OptMethod
	Samples int
	Seed    *int64
}

// Assignment maps a parameter name to its drawn value (int or float64).
type Assignment map[string]any

// Sample draws cfg.Samples independent assignments from space, iterating
// parameters in space's declared order so that two invocations with the
// same (space, cfg) produce byte-identical sequences. Samples == 0 returns
// an empty, non-nil slice without error.
func Sample(space ParameterSpace, cfg Config) ([]Assignment, error) {
	if cfg.Samples == 0 {
		return []Assignment{}, nil
	}
	if cfg.Samples < 0 {
		return nil, fmt.Errorf("samples must be >= 0, got %d", cfg.Samples)
	}

	var rng *rand.Rand
	if cfg.Seed != nil {
		rng = rand.New(rand.NewSource(*cfg.Seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	out := make([]Assignment, 0, cfg.Samples)
	for i := 0; i < cfg.Samples; i++ {
		assignment := make(Assignment, len(space))
		for _, entry := range space {
			v, err := drawOne(rng, entry.Descriptor)
			if err != nil {
				return nil, fmt.Errorf("parameter %q: %w", entry.Name, err)
			}
			assignment[entry.Name] = v
		}
		out = append(out, assignment)
	}
	return out, nil
}

func drawOne(rng *rand.Rand, d Descriptor) (any, error) {
	if len(d.Values) > 0 {
		return d.Values[rng.Intn(len(d.Values))], nil
	}

	switch d.Distribution {
	case sweepbt.ParamDistribution_Fixed:
		return d.Min, nil
	case sweepbt.ParamDistribution_LogUniform:
		if d.Min <= 0 {
			return nil, ErrNonPositiveLogUniformBound
		}
		logMin, logMax := math.Log10(d.Min), math.Log10(d.Max)
		u := logMin + rng.Float64()*(logMax-logMin)
		v := math.Pow(10, u)
		if d.Class == sweepbt.ParamClass_Int {
			return int(math.Floor(v)), nil
		}
		return v, nil
	default: // Uniform and Unknown both draw uniformly
		v := d.Min + rng.Float64()*(d.Max-d.Min)
		if d.Class == sweepbt.ParamClass_Int {
			return int(math.Floor(v)), nil
		}
		return v, nil
	}
}
