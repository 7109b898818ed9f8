// Copyright (c) 2025 Quantsweep Corp

package sweepbt

import "fmt"

var (
	ErrStrategyNotFound    = fmt.Errorf("strategy not found in registry")
	ErrEmptyBatch          = fmt.Errorf("batch has zero rows")
	ErrColumnLenMismatch   = fmt.Errorf("batch columns have mismatched lengths")
	ErrBadSide             = fmt.Errorf("side must be +1 or -1")
	ErrNegativeValue       = fmt.Errorf("price and qty must be non-negative")
	ErrArrowSchemaMismatch = fmt.Errorf("arrow record does not match TickArrowSchema")
)

// ConfigError is a fatal error encountered while loading or validating an
// experiment configuration. Field names the offending TOML key.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: field %q: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError builds a ConfigError for the given field.
func NewConfigError(field string, err error) *ConfigError {
	return &ConfigError{Field: field, Err: err}
}

// DataError is a fatal error encountered while streaming tick data.
type DataError struct {
	Path string
	Err  error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("data error: %s: %v", e.Path, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// NewDataError builds a DataError for the given source path.
func NewDataError(path string, err error) *DataError {
	return &DataError{Path: path, Err: err}
}

// StrategyPhase names the lifecycle hook a StrategyError occurred in.
type StrategyPhase string

const (
	StrategyPhase_OnStart  StrategyPhase = "on_start"
	StrategyPhase_OnTicks  StrategyPhase = "on_ticks"
	StrategyPhase_OnFinish StrategyPhase = "on_finish"
)

// StrategyError is a fatal error raised by a strategy callback. It aborts
// the whole executor run; partial results are never returned alongside it.
type StrategyError struct {
	StrategyName string
	Phase        StrategyPhase
	Err          error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("strategy %q failed in %s: %v", e.StrategyName, e.Phase, e.Err)
}

func (e *StrategyError) Unwrap() error {
	return e.Err
}

// NewStrategyError builds a StrategyError for the given strategy and phase.
func NewStrategyError(name string, phase StrategyPhase, err error) *StrategyError {
	return &StrategyError{StrategyName: name, Phase: phase, Err: err}
}
