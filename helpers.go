// Copyright (c) 2025 Quantsweep Corp

package sweepbt

import "math"

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// PopStdDev returns the population standard deviation of xs, or 0 for an
// empty slice. Divides by N, not N-1, matching the reference strategies'
// windowed statistics.
func PopStdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := Mean(xs)
	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(xs)))
}

// Diff returns the successive differences xs[i] - xs[i-1] for i in [1, len(xs)).
// Returns an empty, non-nil slice if len(xs) < 2.
func Diff(xs []float64) []float64 {
	if len(xs) < 2 {
		return []float64{}
	}
	out := make([]float64, len(xs)-1)
	for i := 1; i < len(xs); i++ {
		out[i-1] = xs[i] - xs[i-1]
	}
	return out
}
