// Copyright (c) 2025 Quantsweep Corp

package sweepbt_test

import (
	"github.com/quantsweep/sweepbt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SymbolTable", func() {
	Context("Intern", func() {
		It("returns a stable id for a repeated ticker", func() {
			tbl := sweepbt.NewSymbolTable()
			a := tbl.Intern("BTC-USD")
			b := tbl.Intern("ETH-USD")
			aAgain := tbl.Intern("BTC-USD")

			Expect(aAgain).To(Equal(a))
			Expect(b).ToNot(Equal(a))
			Expect(tbl.Len()).To(Equal(2))
		})
	})

	Context("Ticker and ID", func() {
		It("resolves an id back to its ticker and vice versa", func() {
			tbl := sweepbt.NewSymbolTable()
			id := tbl.Intern("BTC-USD")

			Expect(tbl.Ticker(id)).To(Equal("BTC-USD"))
			gotID, ok := tbl.ID("BTC-USD")
			Expect(ok).To(BeTrue())
			Expect(gotID).To(Equal(id))
		})
		It("reports unknown tickers as not found", func() {
			tbl := sweepbt.NewSymbolTable()
			_, ok := tbl.ID("nope")
			Expect(ok).To(BeFalse())
		})
	})

	Context("IsEmpty", func() {
		It("is empty until something is interned", func() {
			tbl := sweepbt.NewSymbolTable()
			Expect(tbl.IsEmpty()).To(BeTrue())
			tbl.Intern("X")
			Expect(tbl.IsEmpty()).To(BeFalse())
		})
	})
})
