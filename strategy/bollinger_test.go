// Copyright (c) 2025 Quantsweep Corp

package strategy_test

import (
	"context"

	"github.com/quantsweep/sweepbt/strategy"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BollingerReversion", func() {
	It("buys when price drops well below the lower band", func() {
		r := strategy.RegisterAll()
		ctor, ok := r.Get("bollinger_reversion")
		Expect(ok).To(BeTrue())

		s := ctor("Config_0")
		s.SetParams(map[string]any{"window": 5, "std_dev": 1.0})
		Expect(s.OnStart(context.Background())).To(Succeed())

		prices := []float64{100, 100, 100, 100, 80}
		qtys := []float64{1, 1, 1, 1, 1}
		sides := []int8{1, 1, 1, 1, 1}
		Expect(s.OnTicks(prices, qtys, sides, context.Background())).To(Succeed())

		stats := s.GetStats()
		Expect(stats["trades"].(int)).To(BeNumerically(">", 0))
		Expect(stats["window"]).To(Equal(5))
		Expect(stats["std_dev"]).To(Equal(1.0))
	})

	It("skips trading before the window fills", func() {
		r := strategy.RegisterAll()
		ctor, _ := r.Get("bollinger_reversion")
		inst := ctor("Config_0")
		inst.SetParams(map[string]any{"window": 200})
		_ = inst.OnStart(context.Background())

		Expect(inst.OnTicks([]float64{100, 101}, []float64{1, 1}, []int8{1, 1}, context.Background())).To(Succeed())
		Expect(inst.GetStats()["trades"].(int)).To(Equal(0))
	})
})
