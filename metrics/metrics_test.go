// Copyright (c) 2025 Quantsweep Corp

package metrics_test

import (
	"testing"

	"github.com/quantsweep/sweepbt/metrics"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Test Launcher
func TestMetrics(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "metrics suite")
}

var _ = Describe("Summarize", func() {
	It("returns zero metrics for an empty equity history", func() {
		s := metrics.Summarize(nil, 100_000, 3)
		Expect(s.ROI).To(Equal(0.0))
		Expect(s.MaxDD).To(Equal(0.0))
		Expect(s.Sharpe).To(Equal(0.0))
		Expect(s.Trades).To(Equal(3))
	})

	It("computes ROI and final PnL", func() {
		s := metrics.Summarize([]float64{100_000, 110_000}, 100_000, 1)
		Expect(s.ROI).To(BeNumerically("~", 10.0, 1e-9))
		Expect(s.FinalPnL).To(BeNumerically("~", 10_000, 1e-9))
	})

	It("computes the max drawdown across peaks", func() {
		s := metrics.Summarize([]float64{100, 120, 90, 150, 60}, 100, 0)
		Expect(s.MaxDD).To(BeNumerically("~", 60.0, 1e-9))
	})

	It("gives flat equity a zero Sharpe", func() {
		s := metrics.Summarize([]float64{100, 100, 100, 100}, 100, 0)
		Expect(s.Sharpe).To(Equal(0.0))
	})

	It("gives a steady uptrend a positive Sharpe", func() {
		s := metrics.Summarize([]float64{100, 101, 102, 103, 104}, 100, 0)
		Expect(s.Sharpe).To(BeNumerically(">", 0))
	})
})
