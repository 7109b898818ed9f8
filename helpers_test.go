// Copyright (c) 2025 Quantsweep Corp

package sweepbt_test

import (
	"testing"

	"github.com/quantsweep/sweepbt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Test Launcher
func TestSweepbt(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "sweepbt suite")
}

var _ = Describe("Helpers", func() {
	Context("Mean", func() {
		It("returns 0 for an empty slice", func() {
			Expect(sweepbt.Mean(nil)).To(Equal(float64(0)))
		})
		It("averages a slice of values", func() {
			Expect(sweepbt.Mean([]float64{1, 2, 3, 4})).To(Equal(2.5))
		})
	})
	Context("PopStdDev", func() {
		It("returns 0 for an empty slice", func() {
			Expect(sweepbt.PopStdDev(nil)).To(Equal(float64(0)))
		})
		It("returns 0 for a constant slice", func() {
			Expect(sweepbt.PopStdDev([]float64{5, 5, 5})).To(Equal(float64(0)))
		})
		It("computes the population standard deviation", func() {
			Expect(sweepbt.PopStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})).To(BeNumerically("~", 2.0, 1e-9))
		})
	})
	Context("Diff", func() {
		It("returns an empty slice for fewer than two elements", func() {
			Expect(sweepbt.Diff([]float64{})).To(BeEmpty())
			Expect(sweepbt.Diff([]float64{1})).To(BeEmpty())
		})
		It("computes successive differences", func() {
			Expect(sweepbt.Diff([]float64{1, 3, 6, 10})).To(Equal([]float64{2, 3, 4}))
		})
	})
})
