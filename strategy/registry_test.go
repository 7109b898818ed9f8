// Copyright (c) 2025 Quantsweep Corp

package strategy_test

import (
	"testing"

	"github.com/quantsweep/sweepbt/strategy"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Test Launcher
func TestStrategy(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "strategy suite")
}

var _ = Describe("Registry", func() {
	It("registers the reference strategies in order", func() {
		r := strategy.RegisterAll()
		Expect(r.Names()).To(Equal([]string{"ofi_momentum", "bollinger_reversion", "cross_venue_arbitrage"}))
	})

	It("reports not-found for an unregistered name", func() {
		r := strategy.NewRegistry()
		_, ok := r.Get("nope")
		Expect(ok).To(BeFalse())
	})

	It("re-registering a name overwrites the constructor but keeps position", func() {
		r := strategy.NewRegistry()
		calls := 0
		r.Register("a", func(name string) strategy.Strategy {
			calls++
			return nil
		})
		r.Register("b", func(name string) strategy.Strategy { return nil })
		r.Register("a", func(name string) strategy.Strategy {
			calls += 100
			return nil
		})

		Expect(r.Names()).To(Equal([]string{"a", "b"}))
		ctor, _ := r.Get("a")
		ctor("x")
		Expect(calls).To(Equal(100))
	})
})
