// Copyright (c) 2025 Quantsweep Corp

package sweepbt_test

import (
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/quantsweep/sweepbt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func validBatch() *sweepbt.TickBatch {
	return &sweepbt.TickBatch{
		TsExchange: []int64{1, 2, 3},
		Price:      []int64{100, 101, 102},
		Qty:        []int64{10, 20, 30},
		Side:       []sweepbt.Side{sweepbt.Side_Buy, sweepbt.Side_Sell, sweepbt.Side_Buy},
		SymbolID:   []int64{0, 0, 1},
	}
}

var _ = Describe("TickBatch", func() {
	Context("ValidateBatch", func() {
		It("accepts a well-formed batch", func() {
			Expect(sweepbt.ValidateBatch(validBatch())).To(BeNil())
		})
		It("rejects an empty batch", func() {
			b := &sweepbt.TickBatch{}
			Expect(sweepbt.ValidateBatch(b)).To(MatchError(sweepbt.ErrEmptyBatch))
		})
		It("rejects mismatched column lengths", func() {
			b := validBatch()
			b.Price = b.Price[:1]
			Expect(sweepbt.ValidateBatch(b)).To(MatchError(sweepbt.ErrColumnLenMismatch))
		})
		It("rejects a bad side value", func() {
			b := validBatch()
			b.Side[0] = 0
			Expect(sweepbt.ValidateBatch(b)).To(MatchError(sweepbt.ErrBadSide))
		})
		It("rejects a negative price or qty", func() {
			b := validBatch()
			b.Price[0] = -1
			Expect(sweepbt.ValidateBatch(b)).To(MatchError(sweepbt.ErrNegativeValue))
		})
	})

	Context("At", func() {
		It("reconstructs the Tick at the given row", func() {
			b := validBatch()
			want := sweepbt.Tick{TsExchange: 2, Price: 101, Qty: 20, Side: sweepbt.Side_Sell, SymbolID: 0}
			Expect(b.At(1)).To(Equal(want))
		})
	})

	Context("Arrow interchange", func() {
		It("materializes the expected shape via ToArrowRecord", func() {
			b := validBatch()
			mem := memory.NewGoAllocator()
			rec := b.ToArrowRecord(mem)
			defer rec.Release()

			Expect(rec.NumRows()).To(Equal(int64(3)))
			Expect(rec.NumCols()).To(Equal(int64(5)))
		})

		It("round-trips through ToArrowRecord and FromArrowRecord", func() {
			b := validBatch()
			mem := memory.NewGoAllocator()
			rec := b.ToArrowRecord(mem)
			defer rec.Release()

			got, err := sweepbt.FromArrowRecord(rec)
			Expect(err).To(BeNil())
			Expect(got).To(Equal(b))
		})
	})
})
