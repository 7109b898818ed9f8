// Copyright (c) 2025 Quantsweep Corp

package strategy_test

import (
	"context"

	"github.com/quantsweep/sweepbt/strategy"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("OFIMomentum", func() {
	It("registers, trades on strong net flow, and surfaces its params", func() {
		r := strategy.RegisterAll()
		ctor, ok := r.Get("ofi_momentum")
		Expect(ok).To(BeTrue())

		s := ctor("Config_0")
		s.SetParams(map[string]any{"window": 4, "threshold": 1.0})
		Expect(s.OnStart(context.Background())).To(Succeed())

		prices := []float64{100, 101, 102, 103}
		qtys := []float64{1, 1, 1, 1}
		sides := []int8{1, 1, 1, 1}
		Expect(s.OnTicks(prices, qtys, sides, context.Background())).To(Succeed())
		Expect(s.OnFinish(context.Background())).To(Succeed())

		stats := s.GetStats()
		Expect(stats["name"]).To(Equal("Config_0"))
		Expect(stats["trades"].(int)).To(BeNumerically(">", 0))
		Expect(stats["window"]).To(Equal(4))
		Expect(stats["threshold"]).To(Equal(1.0))
	})

	It("treats an empty batch as a no-op", func() {
		r := strategy.RegisterAll()
		ctor, _ := r.Get("ofi_momentum")
		inst := ctor("Config_0")
		inst.SetParams(map[string]any{})
		_ = inst.OnStart(context.Background())
		Expect(inst.OnTicks(nil, nil, nil, context.Background())).To(Succeed())
	})
})
