// Copyright (c) 2025 Quantsweep Corp
//
// Adapted from the DataBento DBN enum pattern:
//   https://github.com/databento/dbn/blob/main/rust/dbn/src/enums.rs
//

package sweepbt

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FixedPointScale is the global scale applied to prices and quantities when
// converting to and from the fixed-point representation that crosses every
// tick-batch boundary (see fixedpoint.go).
const FixedPointScale float64 = 100_000_000.0

// Side is the taker side of a tick: +1 for a taker-buy, -1 for a taker-sell.
type Side int8

const (
	Side_Buy  Side = 1
	Side_Sell Side = -1
)

// ParamClass is the numeric class of a parameter space descriptor.
type ParamClass uint8

const (
	ParamClass_Unknown ParamClass = iota
	ParamClass_Int
	ParamClass_Float
)

func (c ParamClass) String() string {
	switch c {
	case ParamClass_Int:
		return "int"
	case ParamClass_Float:
		return "float"
	default:
		return ""
	}
}

// ParamClassFromString converts a string to a ParamClass.
// Returns an error if the string is unknown.
func ParamClassFromString(str string) (ParamClass, error) {
	switch strings.ToLower(str) {
	case "int":
		return ParamClass_Int, nil
	case "float":
		return ParamClass_Float, nil
	default:
		return ParamClass_Unknown, fmt.Errorf("unknown ParamClass: %s", str)
	}
}

func (c ParamClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ParamClass) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, err := ParamClassFromString(str)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParamDistribution is the sampling distribution of a parameter space descriptor.
type ParamDistribution uint8

const (
	ParamDistribution_Unknown ParamDistribution = iota
	ParamDistribution_Uniform
	ParamDistribution_LogUniform
	ParamDistribution_Fixed
)

func (d ParamDistribution) String() string {
	switch d {
	case ParamDistribution_Uniform:
		return "uniform"
	case ParamDistribution_LogUniform:
		return "log_uniform"
	case ParamDistribution_Fixed:
		return "fixed"
	default:
		return ""
	}
}

// ParamDistributionFromString converts a string to a ParamDistribution.
// Returns an error if the string is unknown.
func ParamDistributionFromString(str string) (ParamDistribution, error) {
	switch strings.ToLower(str) {
	case "uniform":
		return ParamDistribution_Uniform, nil
	case "log_uniform":
		return ParamDistribution_LogUniform, nil
	case "fixed":
		return ParamDistribution_Fixed, nil
	default:
		return ParamDistribution_Unknown, fmt.Errorf("unknown ParamDistribution: %s", str)
	}
}

func (d ParamDistribution) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *ParamDistribution) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, err := ParamDistributionFromString(str)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// OptMethod is the sampling method requested by an experiment's optimization config.
type OptMethod uint8

const (
	OptMethod_Unknown OptMethod = iota
	OptMethod_Grid
	OptMethod_MonteCarlo
)

func (m OptMethod) String() string {
	switch m {
	case OptMethod_Grid:
		return "grid"
	case OptMethod_MonteCarlo:
		return "monte_carlo"
	default:
		return ""
	}
}

// OptMethodFromString converts a string to an OptMethod.
// Returns an error if the string is unknown.
func OptMethodFromString(str string) (OptMethod, error) {
	switch strings.ToLower(str) {
	case "grid":
		return OptMethod_Grid, nil
	case "monte_carlo":
		return OptMethod_MonteCarlo, nil
	default:
		return OptMethod_Unknown, fmt.Errorf("unknown OptMethod: %s", str)
	}
}

func (m OptMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *OptMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, err := OptMethodFromString(str)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
