// Copyright (c) 2025 Quantsweep Corp

package sweepbt

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Tick is one decoded trade print: a fixed-point price and quantity, the
// taker side, a symbol id, and a nanosecond exchange timestamp.
type Tick struct {
	TsExchange int64
	Price      int64
	Qty        int64
	Side       Side
	SymbolID   int64
}

// TickBatch is a struct-of-arrays columnar slab of ticks, the unit every
// strategy's OnTicks callback consumes. All five columns must have equal
// length; ValidateBatch enforces that plus the per-row invariants.
type TickBatch struct {
	TsExchange []int64
	Price      []int64
	Qty        []int64
	Side       []Side
	SymbolID   []int64
}

// Len returns the row count of the batch, taken from TsExchange.
func (b *TickBatch) Len() int {
	return len(b.TsExchange)
}

// At reconstructs the Tick at row i. Intended for tests and small tools;
// strategies should iterate the columns directly for performance.
func (b *TickBatch) At(i int) Tick {
	return Tick{
		TsExchange: b.TsExchange[i],
		Price:      b.Price[i],
		Qty:        b.Qty[i],
		Side:       b.Side[i],
		SymbolID:   b.SymbolID[i],
	}
}

// ValidateBatch checks the struct-of-arrays invariants: every column has
// the same length as TsExchange, the batch is non-empty, every side is
// +1 or -1, and every price and qty is non-negative.
func ValidateBatch(b *TickBatch) error {
	n := len(b.TsExchange)
	if n == 0 {
		return ErrEmptyBatch
	}
	if len(b.Price) != n || len(b.Qty) != n || len(b.Side) != n || len(b.SymbolID) != n {
		return ErrColumnLenMismatch
	}
	for i := 0; i < n; i++ {
		if b.Side[i] != Side_Buy && b.Side[i] != Side_Sell {
			return ErrBadSide
		}
		if b.Price[i] < 0 || b.Qty[i] < 0 {
			return ErrNegativeValue
		}
	}
	return nil
}

// TickArrowSchema is the Arrow schema backing TickBatch.ToArrowRecord,
// mirroring the struct-of-arrays field order.
var TickArrowSchema = arrow.NewSchema(
	[]arrow.Field{
		{Name: "ts_exchange", Type: arrow.PrimitiveTypes.Int64},
		{Name: "price", Type: arrow.PrimitiveTypes.Int64},
		{Name: "qty", Type: arrow.PrimitiveTypes.Int64},
		{Name: "side", Type: arrow.PrimitiveTypes.Int8},
		{Name: "symbol_id", Type: arrow.PrimitiveTypes.Int64},
	},
	nil,
)

// ToArrowRecord materializes the batch as an Arrow record using mem for
// buffer allocation. The caller owns the returned record and must call
// Release on it.
func (b *TickBatch) ToArrowRecord(mem memory.Allocator) arrow.Record {
	n := b.Len()

	tsBuilder := array.NewInt64Builder(mem)
	defer tsBuilder.Release()
	tsBuilder.AppendValues(b.TsExchange, nil)

	priceBuilder := array.NewInt64Builder(mem)
	defer priceBuilder.Release()
	priceBuilder.AppendValues(b.Price, nil)

	qtyBuilder := array.NewInt64Builder(mem)
	defer qtyBuilder.Release()
	qtyBuilder.AppendValues(b.Qty, nil)

	sideBuilder := array.NewInt8Builder(mem)
	defer sideBuilder.Release()
	sideVals := make([]int8, n)
	for i, s := range b.Side {
		sideVals[i] = int8(s)
	}
	sideBuilder.AppendValues(sideVals, nil)

	symBuilder := array.NewInt64Builder(mem)
	defer symBuilder.Release()
	symBuilder.AppendValues(b.SymbolID, nil)

	cols := []arrow.Array{
		tsBuilder.NewArray(),
		priceBuilder.NewArray(),
		qtyBuilder.NewArray(),
		sideBuilder.NewArray(),
		symBuilder.NewArray(),
	}
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()

	return array.NewRecord(TickArrowSchema, cols, int64(n))
}

// FromArrowRecord reconstructs a TickBatch from an Arrow record built by
// ToArrowRecord (or anything sharing TickArrowSchema's field order and
// types). The returned batch owns freshly copied Go slices; rec is not
// retained and the caller keeps its own Release obligation.
func FromArrowRecord(rec arrow.Record) (*TickBatch, error) {
	if rec.NumCols() != int64(len(TickArrowSchema.Fields())) {
		return nil, ErrArrowSchemaMismatch
	}

	tsCol, ok := rec.Column(0).(*array.Int64)
	if !ok {
		return nil, ErrArrowSchemaMismatch
	}
	priceCol, ok := rec.Column(1).(*array.Int64)
	if !ok {
		return nil, ErrArrowSchemaMismatch
	}
	qtyCol, ok := rec.Column(2).(*array.Int64)
	if !ok {
		return nil, ErrArrowSchemaMismatch
	}
	sideCol, ok := rec.Column(3).(*array.Int8)
	if !ok {
		return nil, ErrArrowSchemaMismatch
	}
	symCol, ok := rec.Column(4).(*array.Int64)
	if !ok {
		return nil, ErrArrowSchemaMismatch
	}

	n := int(rec.NumRows())
	b := &TickBatch{
		TsExchange: make([]int64, n),
		Price:      make([]int64, n),
		Qty:        make([]int64, n),
		Side:       make([]Side, n),
		SymbolID:   make([]int64, n),
	}
	copy(b.TsExchange, tsCol.Int64Values())
	copy(b.Price, priceCol.Int64Values())
	copy(b.Qty, qtyCol.Int64Values())
	copy(b.SymbolID, symCol.Int64Values())
	for i, v := range sideCol.Int8Values() {
		b.Side[i] = Side(v)
	}
	return b, nil
}
