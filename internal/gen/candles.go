package gen

import (
	"sync"
	"time"

	"dashmock/internal/models"
	"dashmock/internal/randx"
	"dashmock/internal/refdata"
)

const (
	// SeriesLength is the fixed number of bars per symbol.
	SeriesLength = 100

	barInterval = 5 * time.Minute
)

// CandleCache memoizes one candle series per symbol so the chart is
// stable across repeated requests within a session. Owned by the mock
// transport instance, never process-global. The check-generate-store
// sequence is serialized so concurrent first access to the same symbol
// cannot generate twice.
type CandleCache struct {
	mu     sync.Mutex
	rnd    *randx.Source
	series map[string][]models.Candle
}

func NewCandleCache(rnd *randx.Source) *CandleCache {
	return &CandleCache{
		rnd:    rnd,
		series: map[string][]models.Candle{},
	}
}

// Get returns the cached series for symbol, generating it on first
// access. Successive calls return the identical slice contents.
func (c *CandleCache) Get(symbol string) []models.Candle {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.series[symbol]; ok {
		return s
	}
	s := candleWalk(c.rnd, symbol)
	c.series[symbol] = s
	return s
}

// candleWalk produces SeriesLength bars, oldest first, via a biased
// random walk anchored below the reference price.
func candleWalk(rnd *randx.Source, symbol string) []models.Candle {
	ref := refdata.ReferencePrices[symbol]
	if ref == 0 {
		ref = 100
	}
	price := ref * rnd.Float(0.85, 0.95)
	vol := walkVolatility(price)
	now := time.Now().UTC()

	bars := make([]models.Candle, 0, SeriesLength)
	for i := 0; i < SeriesLength; i++ {
		open := price
		// Slight upward bias so the demo chart trends back toward the
		// reference price over the window.
		change := open * rnd.Float(-vol, vol*1.15)
		close := open + change

		hi := open
		lo := close
		if close > open {
			hi, lo = close, open
		}
		pad := abs(change)
		high := hi + rnd.Float(0, 0.6)*pad
		low := lo - rnd.Float(0, 0.6)*pad

		bars = append(bars, models.Candle{
			Time:   now.Add(-time.Duration(SeriesLength-i) * barInterval),
			Open:   randx.Round(open, 4),
			High:   randx.Round(high, 4),
			Low:    randx.Round(low, 4),
			Close:  randx.Round(close, 4),
			Volume: randx.Round(volumeFor(price, rnd), 2),
		})
		price = close
	}
	return bars
}

// walkVolatility picks the per-bar move band by price magnitude.
func walkVolatility(price float64) float64 {
	switch {
	case price >= 10000:
		return 0.0025
	case price >= 100:
		return 0.004
	default:
		return 0.007
	}
}

// volumeFor approximates constant dollar volume: cheaper assets print
// bigger unit volume.
func volumeFor(price float64, rnd *randx.Source) float64 {
	base := 4_000_000 / (price + 1)
	return rnd.Float(base*0.5, base*1.5)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
