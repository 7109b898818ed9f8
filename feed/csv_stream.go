// Copyright (c) 2025 Quantsweep Corp

// Package feed lazily transforms a raw, optionally compressed CSV tick
// source into schema-conforming fixed-point batches.
package feed

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/quantsweep/sweepbt"
)

// DefaultBatchSize is the row count per yielded batch absent an explicit
// override.
const DefaultBatchSize = 100_000

var requiredColumns = []string{"time", "price", "quantity", "isbuyermaker"}

// Streamer lazily decodes a CSV (optionally .gz/.zst/.zstd compressed)
// tick source into TickBatch values of at most BatchSize rows, honoring
// the O(BatchSize) memory discipline §4.C requires. Call Next in a loop
// until it returns false, then check Err.
type Streamer struct {
	path      string
	batchSize int

	closer io.Closer
	reader *csv.Reader

	symbols *sweepbt.SymbolTable

	colTime, colPrice, colQty, colMaker, colSymbol int

	err  error
	done bool
}

// Open returns a Streamer over path with the given batch size (0 uses
// DefaultBatchSize). symbols, if non-nil, receives interned symbol
// labels from an optional "symbol" column; pass nil for single-asset
// sources, in which case every row's symbol_id is 0.
func Open(path string, batchSize int, symbols *sweepbt.SymbolTable) (*Streamer, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	reader, closer, err := sweepbt.MakeCompressedReader(path, false)
	if err != nil {
		return nil, sweepbt.NewDataError(path, err)
	}

	csvReader := csv.NewReader(reader)
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, sweepbt.NewDataError(path, err)
	}

	s := &Streamer{
		path:      path,
		batchSize: batchSize,
		closer:    closer,
		reader:    csvReader,
		symbols:   symbols,
	}
	if err := s.resolveColumns(header); err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}
	return s, nil
}

func (s *Streamer) resolveColumns(header []string) error {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return sweepbt.NewDataError(s.path, errMissingColumn(col))
		}
	}
	s.colTime = idx["time"]
	s.colPrice = idx["price"]
	s.colQty = idx["quantity"]
	s.colMaker = idx["isbuyermaker"]
	if i, ok := idx["symbol"]; ok {
		s.colSymbol = i
	} else {
		s.colSymbol = -1
	}
	return nil
}

type errMissingColumn string

func (e errMissingColumn) Error() string {
	return "missing required column: " + string(e)
}

// Next decodes up to BatchSize rows into a fresh TickBatch. Returns
// (batch, true) while rows remain, (nil, false) at end of stream or on
// error — callers must check Err after a false return to distinguish a
// clean EOF from a failure.
func (s *Streamer) Next() (*sweepbt.TickBatch, bool) {
	if s.done {
		return nil, false
	}

	batch := &sweepbt.TickBatch{}
	for len(batch.TsExchange) < s.batchSize {
		record, err := s.reader.Read()
		if err == io.EOF {
			s.done = true
			break
		}
		if err != nil {
			s.err = sweepbt.NewDataError(s.path, err)
			s.done = true
			return nil, false
		}

		tick, err := s.decodeRow(record)
		if err != nil {
			s.err = sweepbt.NewDataError(s.path, err)
			s.done = true
			return nil, false
		}
		batch.TsExchange = append(batch.TsExchange, tick.TsExchange)
		batch.Price = append(batch.Price, tick.Price)
		batch.Qty = append(batch.Qty, tick.Qty)
		batch.Side = append(batch.Side, tick.Side)
		batch.SymbolID = append(batch.SymbolID, tick.SymbolID)
	}

	if len(batch.TsExchange) == 0 {
		if s.closer != nil {
			s.closer.Close()
		}
		return nil, false
	}
	return batch, true
}

func (s *Streamer) decodeRow(record []string) (sweepbt.Tick, error) {
	timeMs, err := strconv.ParseInt(record[s.colTime], 10, 64)
	if err != nil {
		return sweepbt.Tick{}, err
	}
	price, err := strconv.ParseFloat(record[s.colPrice], 64)
	if err != nil {
		return sweepbt.Tick{}, err
	}
	qty, err := strconv.ParseFloat(record[s.colQty], 64)
	if err != nil {
		return sweepbt.Tick{}, err
	}
	maker, err := strconv.ParseInt(record[s.colMaker], 10, 8)
	if err != nil {
		return sweepbt.Tick{}, err
	}

	side := sweepbt.Side_Buy
	if maker == 1 {
		side = sweepbt.Side_Sell
	}

	var symbolID int64
	if s.colSymbol >= 0 && s.symbols != nil {
		symbolID = s.symbols.Intern(record[s.colSymbol])
	}

	return sweepbt.Tick{
		TsExchange: timeMs * 1_000_000,
		Price:      sweepbt.ToFixed(price),
		Qty:        sweepbt.ToFixed(qty),
		Side:       side,
		SymbolID:   symbolID,
	}, nil
}

// Err returns the error that stopped iteration, or nil on a clean EOF.
func (s *Streamer) Err() error {
	return s.err
}

// Close releases the underlying file handle. Safe to call after Next has
// already closed it at EOF.
func (s *Streamer) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
