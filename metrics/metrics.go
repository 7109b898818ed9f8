// Copyright (c) 2025 Quantsweep Corp

// Package metrics computes the performance statistics reported by every
// strategy instance at the end of a run: return, drawdown, Sharpe, and
// trade count.
package metrics

import (
	"math"

	"github.com/quantsweep/sweepbt"
)

// annualizationFactor approximates one-trading-year's worth of per-minute
// batches (252 trading days x 1440 minutes/day) for annualizing the
// per-batch Sharpe ratio. Flagged as an approximation: real batch cadence
// need not be exactly one minute.
var annualizationFactor = math.Sqrt(252 * 1440)

// Summary is the standard metric set computed from an equity curve.
type Summary struct {
	ROI      float64
	MaxDD    float64
	Sharpe   float64
	Trades   int
	FinalPnL float64
}

// Summarize computes Summary from an equity history (one entry per batch
// observed, in order), the strategy's starting capital, and its trade
// counter. An empty history returns a zero-valued Summary except Trades.
func Summarize(equity []float64, initialValue float64, trades int) Summary {
	s := Summary{Trades: trades}
	if len(equity) == 0 {
		return s
	}

	final := equity[len(equity)-1]
	s.FinalPnL = final - initialValue
	if initialValue != 0 {
		s.ROI = (final - initialValue) / initialValue * 100
	}
	s.MaxDD = maxDrawdown(equity)
	s.Sharpe = sharpe(equity)
	return s
}

// maxDrawdown returns the largest peak-to-trough percentage decline
// across the equity curve. Returns 0 for an empty history.
func maxDrawdown(equity []float64) float64 {
	if len(equity) == 0 {
		return 0
	}
	peak := equity[0]
	var worst float64
	for _, e := range equity {
		if e > peak {
			peak = e
		}
		if peak == 0 {
			continue
		}
		dd := (peak - e) / peak * 100
		if dd > worst {
			worst = dd
		}
	}
	return worst
}

// sharpe computes the annualized Sharpe ratio of the per-batch returns
// implied by equity. Returns 0 if fewer than two equity points exist or
// the return series has zero variance.
func sharpe(equity []float64) float64 {
	if len(equity) < 2 {
		return 0
	}
	returns := make([]float64, 0, len(equity)-1)
	for i := 1; i < len(equity); i++ {
		prev := equity[i-1]
		if prev == 0 {
			continue
		}
		returns = append(returns, (equity[i]-prev)/prev)
	}
	if len(returns) == 0 {
		return 0
	}

	mean := sweepbt.Mean(returns)
	std := sweepbt.PopStdDev(returns)
	if std == 0 {
		return 0
	}
	return (mean / std) * annualizationFactor
}
