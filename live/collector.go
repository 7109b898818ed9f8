// Copyright (c) 2025 Quantsweep Corp

// Package live fetches a concurrent BTC/USD(T) price snapshot from the
// venues the cross-venue arbitrage strategy models, for demo and manual
// inspection outside the deterministic backtest path.
package live

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/valyala/fastjson"
	"golang.org/x/sync/errgroup"
)

// venue names one of the 11 monitored exchanges and how to pull its last
// price out of that exchange's ticker JSON.
type venue struct {
	name   string
	url    string
	parse  func(*fastjson.Value) (float64, bool)
}

// Venues lists every exchange this collector polls, in a fixed order so
// snapshot output is stable across runs. Poloniex is not in the list; no
// adapter is wired for it.
var Venues = []venue{
	{"Bitfinex", "https://api-pub.bitfinex.com/v2/ticker/tBTCUSD", parseBitfinex},
	{"Binance", "https://api.binance.com/api/v3/ticker/price?symbol=BTCUSDT", parseField("price")},
	{"Coinbase", "https://api.coinbase.com/v2/prices/BTC-USD/spot", parsePath("data", "amount")},
	{"Kraken", "https://api.kraken.com/0/public/Ticker?pair=XBTUSD", parseKraken},
	{"Huobi", "https://api.huobi.pro/market/detail/merged?symbol=btcusdt", parsePath("tick", "close")},
	{"OKX", "https://www.okx.com/api/v5/market/ticker?instId=BTC-USDT", parseOKXLike},
	{"KuCoin", "https://api.kucoin.com/api/v1/market/orderbook/level1?symbol=BTC-USDT", parsePath("data", "price")},
	{"Gate.io", "https://api.gateio.ws/api/v4/spot/tickers?currency_pair=BTC_USDT", parseGateIO},
	{"Bitstamp", "https://www.bitstamp.net/api/v2/ticker/btcusd/", parseField("last")},
	{"Gemini", "https://api.gemini.com/v1/pubticker/btcusd", parseField("last")},
	{"Crypto.com", "https://api.crypto.com/v2/public/get-ticker?instrument_name=BTC_USDT", parseCryptoCom},
}

func parseBitfinex(v *fastjson.Value) (float64, bool) {
	arr, err := v.Array()
	if err != nil || len(arr) <= 6 {
		return 0, false
	}
	return stringOrNumber(arr[6])
}

func parseField(field string) func(*fastjson.Value) (float64, bool) {
	return func(v *fastjson.Value) (float64, bool) {
		return stringOrNumber(v.Get(field))
	}
}

func parsePath(path ...string) func(*fastjson.Value) (float64, bool) {
	return func(v *fastjson.Value) (float64, bool) {
		return stringOrNumber(v.Get(path...))
	}
}

func parseKraken(v *fastjson.Value) (float64, bool) {
	return stringOrNumber(v.Get("result", "XXBTZUSD", "c", "0"))
}

func parseOKXLike(v *fastjson.Value) (float64, bool) {
	return stringOrNumber(v.Get("data", "0", "last"))
}

func parseGateIO(v *fastjson.Value) (float64, bool) {
	return stringOrNumber(v.Get("0", "last"))
}

func parseCryptoCom(v *fastjson.Value) (float64, bool) {
	return stringOrNumber(v.Get("result", "data", "0", "a"))
}

func stringOrNumber(v *fastjson.Value) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if f, err := v.Float64(); err == nil {
		return f, true
	}
	if sb, err := v.StringBytes(); err == nil {
		var f float64
		if _, err := fmt.Sscanf(string(sb), "%g", &f); err == nil {
			return f, true
		}
	}
	return 0, false
}

// Quote is one venue's observed BTC/USD(T) price, or a miss.
type Quote struct {
	Venue string
	Price float64
	OK    bool
}

// Client collects a bounded-concurrency snapshot across Venues, retrying
// transient per-request failures with backoff via retryablehttp.
type Client struct {
	http    *retryablehttp.Client
	timeout time.Duration
}

// NewClient returns a Client with a 4s per-request timeout and
// retryablehttp's default exponential backoff, logging suppressed (the
// caller's structured logger, not retryablehttp's own, owns visibility).
func NewClient() *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.Logger = nil
	return &Client{http: rc, timeout: 4 * time.Second}
}

// Snapshot fetches every venue in Venues concurrently, one request per
// venue, each governed by its own timeout; a venue that errors, times
// out, or fails to parse is silently omitted from the returned slice
// (the NetworkError case — non-fatal by design). The returned quotes
// keep the order of Venues.
func (c *Client) Snapshot(ctx context.Context) []Quote {
	quotes := make([]Quote, len(Venues))
	g, gctx := errgroup.WithContext(ctx)
	for i, v := range Venues {
		i, v := i, v
		g.Go(func() error {
			price, ok := c.fetchOne(gctx, v)
			quotes[i] = Quote{Venue: v.name, Price: price, OK: ok}
			return nil
		})
	}
	// Errors are never returned: a per-venue failure is absorbed into
	// Quote.OK, so Wait only waits for completion here.
	_ = g.Wait()

	out := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.OK {
			out = append(out, q)
		}
	}
	return out
}

func (c *Client) fetchOne(ctx context.Context, v venue) (float64, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, v.url, nil)
	if err != nil {
		return 0, false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, false
	}
	parsed, err := fastjson.ParseBytes(body)
	if err != nil {
		return 0, false
	}
	return v.parse(parsed)
}
