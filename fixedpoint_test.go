// Copyright (c) 2025 Quantsweep Corp

package sweepbt_test

import (
	"github.com/quantsweep/sweepbt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FixedPoint", func() {
	Context("ToFixed and ToReal", func() {
		It("round-trips a range of values within 1e-8", func() {
			for _, x := range []float64{0, 1, 0.00000001, 12345.6789, 1e11, 99999999999.99} {
				Expect(sweepbt.ToReal(sweepbt.ToFixed(x))).To(BeNumerically("~", x, 1e-8))
			}
		})
		It("scales reals up by 1e8", func() {
			Expect(sweepbt.ToFixed(0)).To(Equal(int64(0)))
			Expect(sweepbt.ToFixed(1.0)).To(Equal(int64(100_000_000)))
			Expect(sweepbt.ToFixed(0.5)).To(Equal(int64(50_000_000)))
			Expect(sweepbt.ToFixed(1.23456789)).To(Equal(int64(123_456_789)))
		})
		It("scales fixed-point down by 1e8", func() {
			Expect(sweepbt.ToReal(100_000_000)).To(Equal(1.0))
		})
	})
})
