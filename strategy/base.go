// Copyright (c) 2025 Quantsweep Corp

package strategy

import "github.com/quantsweep/sweepbt/metrics"

const initialCash = 100_000

// Base is the cash/position bookkeeping shared by every reference
// strategy. Embed it to get SetParams, ExecuteBuy/ExecuteSell, equity
// tracking, and a metrics-backed BaseStats helper for GetStats to build on.
type Base struct {
	Name          string
	Params        map[string]any
	Cash          float64
	Position      float64
	InitialValue  float64
	Trades        int
	EquityHistory []float64
}

// NewBase returns a Base with the standard starting capital.
func NewBase(name string) Base {
	return Base{
		Name:         name,
		Params:       make(map[string]any),
		Cash:         initialCash,
		InitialValue: initialCash,
	}
}

// SetParams merges params into the instance's parameter map.
func (b *Base) SetParams(params map[string]any) {
	for k, v := range params {
		b.Params[k] = v
	}
}

// ParamFloat returns params[name] as a float64, falling back to def if the
// key is absent or holds a non-numeric value. Accepts int or int64 (from an
// integer draw or a categorical value list) or float64 (from a continuous
// draw).
func (b *Base) ParamFloat(name string, def float64) float64 {
	v, ok := b.Params[name]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return def
	}
}

// ParamInt returns params[name] as an int, falling back to def if the key
// is absent or holds a non-numeric value.
func (b *Base) ParamInt(name string, def int) int {
	v, ok := b.Params[name]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return def
	}
}

func (b *Base) feeRate() float64 {
	return b.ParamFloat("fee_rate", 0)
}

// ExecuteBuy attempts to buy qty at price, charging fee_rate against cash.
// Returns false without mutating state if cash is insufficient.
func (b *Base) ExecuteBuy(price, qty float64) bool {
	cost := price * qty * (1 + b.feeRate())
	if b.Cash < cost {
		return false
	}
	b.Cash -= cost
	b.Position += qty
	b.Trades++
	return true
}

// ExecuteSell attempts to sell qty at price, crediting cash net of
// fee_rate. Returns false without mutating state if the position is
// insufficient.
func (b *Base) ExecuteSell(price, qty float64) bool {
	if b.Position < qty {
		return false
	}
	b.Position -= qty
	b.Cash += price * qty * (1 - b.feeRate())
	b.Trades++
	return true
}

// RecordEquity appends the current mark-to-market equity at markPrice to
// the equity history. Call once per batch observed.
func (b *Base) RecordEquity(markPrice float64) {
	b.EquityHistory = append(b.EquityHistory, b.Cash+b.Position*markPrice)
}

// BaseStats returns the metrics-derived stats common to every reference
// strategy: name, roi, trades, max_dd, sharpe, pnl.
func (b *Base) BaseStats() Stats {
	sum := metrics.Summarize(b.EquityHistory, b.InitialValue, b.Trades)
	return Stats{
		"name":   b.Name,
		"roi":    sum.ROI,
		"trades": sum.Trades,
		"max_dd": sum.MaxDD,
		"sharpe": sum.Sharpe,
		"pnl":    sum.FinalPnL,
	}
}
