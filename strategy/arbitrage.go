// Copyright (c) 2025 Quantsweep Corp

package strategy

import "context"

// SymbolAwareStrategy is an optional capability: strategies whose
// per-row semantics depend on which symbol (here, venue) a row belongs
// to implement this instead of driving their logic off OnTicks alone.
// The executor type-asserts for it and, when present, calls
// OnTicksWithSymbols with the batch's symbol_id column; otherwise it
// falls back to the plain three-column OnTicks.
type SymbolAwareStrategy interface {
	Strategy
	OnTicksWithSymbols(prices, qtys []float64, sides []int8, symbolIDs []int64, ctx context.Context) error
}

type venueBalance struct {
	usd float64
	btc float64
}

type trade struct {
	buyVenue, sellVenue int64
	profit              float64
}

// CrossVenueArbitrage watches per-venue price snapshots (one batch row
// per venue observation) and trades the spread between the
// currently-cheapest and currently-richest venue whenever it clears
// min_profit after slippage. Balances are tracked per venue, not
// pooled — a trade can only execute when both legs have sufficient
// inventory.
type CrossVenueArbitrage struct {
	Base

	minProfit    float64
	slippageRate float64
	tradeVolume  float64

	prices   map[int64]float64
	balances map[int64]*venueBalance
	trades   []trade

	totalProfit float64
	lastMark    float64
}

func newCrossVenueArbitrage(name string) Strategy {
	return &CrossVenueArbitrage{
		Base:     NewBase(name),
		prices:   make(map[int64]float64),
		balances: make(map[int64]*venueBalance),
	}
}

func registerCrossVenueArbitrage(r *Registry) {
	r.Register("cross_venue_arbitrage", newCrossVenueArbitrage)
}

func (s *CrossVenueArbitrage) OnStart(ctx context.Context) error {
	s.minProfit = s.ParamFloat("min_profit", 0)
	s.slippageRate = s.ParamFloat("slippage_rate", 0.001)
	s.tradeVolume = 0.01
	return nil
}

// OnTicks satisfies Strategy for callers that do not route through the
// symbol-aware path; every row is treated as venue 0, collapsing the
// strategy to a no-op arbitrage (a single venue never clears the
// "fewer than 2 venues known" gate).
func (s *CrossVenueArbitrage) OnTicks(prices, qtys []float64, sides []int8, ctx context.Context) error {
	symbolIDs := make([]int64, len(prices))
	return s.OnTicksWithSymbols(prices, qtys, sides, symbolIDs, ctx)
}

func (s *CrossVenueArbitrage) OnTicksWithSymbols(prices, qtys []float64, sides []int8, symbolIDs []int64, ctx context.Context) error {
	for i, price := range prices {
		venue := symbolIDs[i]
		s.prices[venue] = price
		s.lastMark = price
		s.evaluate(venue)
	}
	s.RecordEquity(s.lastMark)
	return nil
}

func (s *CrossVenueArbitrage) evaluate(currentVenue int64) {
	if len(s.prices) < 2 {
		return
	}

	var buyVenue, sellVenue int64
	var pBuy, pSell float64
	first := true
	for venue, price := range s.prices {
		if first || price < pBuy {
			buyVenue, pBuy = venue, price
		}
		if first || price > pSell {
			sellVenue, pSell = venue, price
		}
		first = false
	}

	if currentVenue != buyVenue && currentVenue != sellVenue {
		return
	}
	if buyVenue == sellVenue {
		return
	}

	cost := s.tradeVolume * pBuy * (1 + s.slippageRate)
	revenue := s.tradeVolume * pSell * (1 - s.slippageRate)
	net := revenue - cost
	if net <= s.minProfit {
		return
	}

	buyBal := s.balanceFor(buyVenue)
	sellBal := s.balanceFor(sellVenue)
	if buyBal.usd < cost || sellBal.btc < s.tradeVolume {
		return
	}

	buyBal.usd -= cost
	buyBal.btc += s.tradeVolume
	sellBal.btc -= s.tradeVolume
	sellBal.usd += revenue

	s.totalProfit += net
	s.Trades++
	s.trades = append(s.trades, trade{buyVenue: buyVenue, sellVenue: sellVenue, profit: net})
}

func (s *CrossVenueArbitrage) balanceFor(venue int64) *venueBalance {
	bal, ok := s.balances[venue]
	if !ok {
		bal = &venueBalance{usd: 100_000, btc: 1.0}
		s.balances[venue] = bal
	}
	return bal
}

func (s *CrossVenueArbitrage) OnFinish(ctx context.Context) error {
	return nil
}

func (s *CrossVenueArbitrage) GetStats() Stats {
	stats := s.BaseStats()
	stats["min_profit"] = s.minProfit
	stats["slippage_rate"] = s.slippageRate
	stats["trade_volume"] = s.tradeVolume
	stats["total_profit"] = s.totalProfit
	stats["venues_observed"] = len(s.prices)
	return stats
}
