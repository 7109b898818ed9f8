// Copyright (c) 2025 Quantsweep Corp

// Package sampler generates reproducible parameter assignments for a
// parameter-sweep experiment from a declarative parameter space.
package sampler

import (
	"github.com/quantsweep/sweepbt"
)

// Descriptor is a single parameter's space: its numeric class, sampling
// distribution, optional bounds, and an optional explicit value list. A
// non-empty Values takes precedence over Min/Max (categorical draw).
type Descriptor struct {
	Class        sweepbt.ParamClass
	Distribution sweepbt.ParamDistribution
	Min          float64
	Max          float64
	Values       []any
}

// Entry pairs a parameter name with its Descriptor. ParameterSpace is
// represented as an ordered slice of Entry, not a bare map, so that the
// RNG consumes parameters in a fixed, caller-visible order — required for
// the sampler's reproducibility invariant.
type Entry struct {
	Name       string
	Descriptor Descriptor
}

// ParameterSpace is the ordered parameter-name-to-descriptor mapping
// consumed by Sample.
type ParameterSpace []Entry
