// Copyright (c) 2025 Quantsweep Corp

package strategy

import "context"

// OFIMomentum trades on decaying order-flow imbalance: it accumulates a
// decayed sum of signed volume and flips position when that sum crosses
// a threshold.
type OFIMomentum struct {
	Base

	window    int
	threshold float64

	ofiSum    float64
	decay     float64
	lastPrice float64
}

func newOFIMomentum(name string) Strategy {
	return &OFIMomentum{Base: NewBase(name)}
}

func registerOFIMomentum(r *Registry) {
	r.Register("ofi_momentum", newOFIMomentum)
}

func (s *OFIMomentum) OnStart(ctx context.Context) error {
	s.window = s.ParamInt("window", 100)
	s.threshold = s.ParamFloat("threshold", 5.0)
	if s.window < 2 {
		s.decay = 0
	} else {
		s.decay = 1 - 1/float64(s.window)
	}
	return nil
}

func (s *OFIMomentum) OnTicks(prices, qtys []float64, sides []int8, ctx context.Context) error {
	if len(prices) == 0 {
		return nil
	}
	s.lastPrice = prices[len(prices)-1]

	var netFlow float64
	for i := range qtys {
		netFlow += qtys[i] * float64(sides[i])
	}
	s.ofiSum = s.ofiSum*s.decay + netFlow

	switch {
	case s.ofiSum > s.threshold && s.Position <= 0:
		s.ExecuteBuy(s.lastPrice, 1)
	case s.ofiSum < -s.threshold && s.Position >= 0:
		s.ExecuteSell(s.lastPrice, 1)
	}

	s.RecordEquity(s.lastPrice)
	return nil
}

func (s *OFIMomentum) OnFinish(ctx context.Context) error {
	return nil
}

func (s *OFIMomentum) GetStats() Stats {
	stats := s.BaseStats()
	stats["window"] = s.window
	stats["threshold"] = s.threshold
	return stats
}
