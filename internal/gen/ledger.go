// Package gen contains the synthetic data generators behind the mock
// transport: the trade ledger, the position projection, candle series,
// event feeds, and the analytics tables. All randomness flows through a
// single injected randx.Source so a fixed seed reproduces every payload.
package gen

import (
	"fmt"
	"sort"
	"time"

	"dashmock/internal/models"
	"dashmock/internal/randx"
	"dashmock/internal/refdata"
)

const (
	// riskFraction is the stop distance as a fraction of the reference
	// price. Doubled at low leverage to emulate wider stops.
	riskFraction = 0.01

	feeRate = 0.0008

	minTradeSize = 1000.0
	maxTradeSize = 15000.0

	closedWindowDays = 30
	openWindowHours  = 24
)

// LedgerParams describes one asset class's ledger.
type LedgerParams struct {
	Symbols   []string
	RefPrices map[string]float64
	Leverage  float64
	Count     int
	OpenCount int
	IDPrefix  string
}

// Ledger synthesizes an internally consistent trade history, newest
// entry first. The first OpenCount records are open and cycle through
// the symbol catalog so every open slot holds a distinct symbol; their
// entry times fall inside the last openWindowHours, which keeps them in
// the leading slots after the final sort.
func Ledger(rnd *randx.Source, p LedgerParams) []models.TradeRecord {
	now := time.Now().UTC()
	trades := make([]models.TradeRecord, 0, p.Count)

	for i := 0; i < p.Count; i++ {
		open := i < p.OpenCount

		var symbol string
		if open {
			symbol = p.Symbols[i%len(p.Symbols)]
		} else {
			symbol = randx.Choice(rnd, p.Symbols)
		}
		ref := p.RefPrices[symbol]
		side := randx.Choice(rnd, refdata.Sides)
		dir := 1.0
		if side == "short" {
			dir = -1.0
		}

		band := refdata.Volatility(symbol)
		entry := randx.Round(ref*(1+rnd.Float(-band, band)), 4)

		outcome := sampleOutcome(rnd)

		risk := riskFraction
		if p.Leverage < 5 {
			risk *= 2
		}
		stopDist := ref * risk
		takeDist := stopDist * rnd.Float(2, 4)
		stop := randx.Round(entry-dir*stopDist, 4)
		target := randx.Round(entry+dir*takeDist, 4)

		size := randx.Round(rnd.Float(minTradeSize, maxTradeSize), 2)
		qty := randx.Round(size/entry, 6)
		pnlPct := randx.Round(outcome*risk*p.Leverage*100, 2)
		pnl := randx.Round(outcome*risk*p.Leverage*size, 2)
		fees := randx.Round(size*feeRate, 2)

		t := models.TradeRecord{
			ID:         fmt.Sprintf("%s-%d", p.IDPrefix, i+1),
			Symbol:     symbol,
			Side:       side,
			EntryPrice: entry,
			Status:     models.StatusClosed,
			Size:       size,
			Quantity:   qty,
			Leverage:   p.Leverage,
			StopLoss:   stop,
			TakeProfit: target,
			Fees:       fees,
			Regime:     randx.Choice(rnd, refdata.Regimes),
			Confidence: randx.Round(rnd.Float(0.5, 0.95), 2),
			SetupType:  randx.Choice(rnd, refdata.SetupTypes),
			Rationale:  randx.Choice(rnd, refdata.Rationales),
			Score:      randx.Round(rnd.Float(50, 95), 1),
		}

		if open {
			t.Status = models.StatusOpen
			t.EntryTime = now.Add(-time.Duration(rnd.Float(0, openWindowHours*60)) * time.Minute)
			// Live price drifts independently of the sampled outcome;
			// unrealized figures come from the drifted price.
			current := randx.Round(entry*(1+rnd.Float(-0.015, 0.015)), 4)
			t.CurrentPrice = current
			move := dir * (current - entry) / entry
			t.PnLPercent = randx.Round(move*p.Leverage*100, 2)
			t.PnL = randx.Round(move*p.Leverage*size, 2)
			t.RMultiple = randx.Round(move/risk, 2)
		} else {
			hoursAgo := rnd.Float(openWindowHours, closedWindowDays*24)
			t.EntryTime = now.Add(-time.Duration(hoursAgo * float64(time.Hour)))
			exitTime := t.EntryTime.Add(time.Duration(rnd.Float(1, 48) * float64(time.Hour)))
			exit := randx.Round(entry*(1+dir*outcome*risk), 4)
			t.ExitTime = &exitTime
			t.ExitPrice = &exit
			t.CurrentPrice = exit
			t.PnLPercent = pnlPct
			t.PnL = pnl
			t.RMultiple = outcome
		}

		trades = append(trades, t)
	}

	sort.Slice(trades, func(i, j int) bool {
		return trades[i].EntryTime.After(trades[j].EntryTime)
	})
	return trades
}

// sampleOutcome draws the trade result in R units from a right-skewed
// discrete mixture: 35% full stop-loss at exactly -1R, the rest spread
// over win bands with shrinking mass toward large wins.
func sampleOutcome(rnd *randx.Source) float64 {
	roll := rnd.Float(0, 1)
	switch {
	case roll < 0.35:
		return -1.0
	case roll < 0.65:
		return randx.Round(rnd.Float(0.5, 1.5), 2)
	case roll < 0.85:
		return randx.Round(rnd.Float(1.5, 2.5), 2)
	case roll < 0.95:
		return randx.Round(rnd.Float(2.5, 3.5), 2)
	default:
		return randx.Round(rnd.Float(3.5, 5.0), 2)
	}
}
