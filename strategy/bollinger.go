// Copyright (c) 2025 Quantsweep Corp

package strategy

import (
	"context"

	"github.com/quantsweep/sweepbt"
)

// BollingerReversion trades mean reversion against a rolling price band
// computed within the current batch. It has no cross-batch history: the
// window is re-derived from whatever prices the current batch carries.
type BollingerReversion struct {
	Base

	window int
	stdDev float64

	lastPrice float64
}

func newBollingerReversion(name string) Strategy {
	return &BollingerReversion{Base: NewBase(name)}
}

func registerBollingerReversion(r *Registry) {
	r.Register("bollinger_reversion", newBollingerReversion)
}

func (s *BollingerReversion) OnStart(ctx context.Context) error {
	s.window = s.ParamInt("window", 200)
	s.stdDev = s.ParamFloat("std_dev", 2.0)
	return nil
}

func (s *BollingerReversion) OnTicks(prices, qtys []float64, sides []int8, ctx context.Context) error {
	if len(prices) == 0 {
		return nil
	}
	s.lastPrice = prices[len(prices)-1]

	if len(prices) < s.window {
		s.RecordEquity(s.lastPrice)
		return nil
	}

	recent := prices[len(prices)-s.window:]
	mean := sweepbt.Mean(recent)
	sigma := sweepbt.PopStdDev(recent)
	upper := mean + s.stdDev*sigma
	lower := mean - s.stdDev*sigma
	current := prices[len(prices)-1]

	switch {
	case current < lower && s.Position <= 0:
		s.ExecuteBuy(current, 1)
	case current > upper && s.Position >= 0:
		s.ExecuteSell(current, 1)
	}

	s.RecordEquity(s.lastPrice)
	return nil
}

func (s *BollingerReversion) OnFinish(ctx context.Context) error {
	return nil
}

func (s *BollingerReversion) GetStats() Stats {
	stats := s.BaseStats()
	stats["window"] = s.window
	stats["std_dev"] = s.stdDev
	return stats
}
