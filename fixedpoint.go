// Copyright (c) 2025 Quantsweep Corp

package sweepbt

import "math"

// ToFixed scales a real-valued price or quantity to the int64 fixed-point
// representation carried by a TickBatch, rounding half to even.
func ToFixed(x float64) int64 {
	return int64(math.RoundToEven(x * FixedPointScale))
}

// ToReal converts a fixed-point price or quantity back to its real value.
func ToReal(v int64) float64 {
	return float64(v) / FixedPointScale
}
