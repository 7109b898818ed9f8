// Copyright (c) 2025 Quantsweep Corp

package strategy_test

import (
	"context"

	"github.com/quantsweep/sweepbt/strategy"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CrossVenueArbitrage", func() {
	It("trades the spread once it clears min_profit after slippage", func() {
		r := strategy.RegisterAll()
		ctor, ok := r.Get("cross_venue_arbitrage")
		Expect(ok).To(BeTrue())

		s := ctor("Config_0")
		s.SetParams(map[string]any{"min_profit": 2.0, "slippage_rate": 0.001})
		Expect(s.OnStart(context.Background())).To(Succeed())

		aware, ok := s.(strategy.SymbolAwareStrategy)
		Expect(ok).To(BeTrue())

		prices := []float64{30_000, 30_500}
		qtys := []float64{1, 1}
		sides := []int8{1, 1}
		symbolIDs := []int64{0, 1}
		Expect(aware.OnTicksWithSymbols(prices, qtys, sides, symbolIDs, context.Background())).To(Succeed())

		stats := s.GetStats()
		Expect(stats["trades"].(int)).To(Equal(1))
		Expect(stats["total_profit"].(float64)).To(BeNumerically("~", 4.3951, 0.1))
		Expect(stats["min_profit"]).To(Equal(2.0))
		Expect(stats["slippage_rate"]).To(Equal(0.001))
	})

	It("never trades with a single venue", func() {
		r := strategy.RegisterAll()
		ctor, _ := r.Get("cross_venue_arbitrage")
		s := ctor("Config_0")
		s.SetParams(map[string]any{"min_profit": 0})
		_ = s.OnStart(context.Background())

		Expect(s.OnTicks([]float64{100, 101, 102}, []float64{1, 1, 1}, []int8{1, 1, 1}, context.Background())).To(Succeed())
		Expect(s.GetStats()["trades"].(int)).To(Equal(0))
	})
})
