package gen

import (
	"dashmock/internal/models"
	"dashmock/internal/randx"
	"dashmock/internal/refdata"
)

// Authored summary tables, independent of the generated ledger: the
// dashboard's headline numbers stay stable while the trade list varies
// per session.
var cryptoStats = models.StatsRecord{
	TotalTrades:  347,
	WinRate:      58.2,
	ProfitFactor: 2.31,
	TotalPnL:     48230.50,
	AvgWin:       612.40,
	AvgLoss:      -264.10,
	MaxDrawdown:  -8.4,
	BestStreak:   9,
	WorstStreak:  -4,
	AvgRMultiple: 0.74,
	SharpeRatio:  1.92,
	SetupBreakdown: map[string]models.SetupMetrics{
		"breakout":           {Trades: 86, WinRate: 61.6, AvgR: 0.88, PnL: 16840.20},
		"pullback":           {Trades: 74, WinRate: 59.5, AvgR: 0.71, PnL: 11320.80},
		"mean_reversion":     {Trades: 58, WinRate: 53.4, AvgR: 0.52, PnL: 6110.40},
		"trend_continuation": {Trades: 67, WinRate: 62.7, AvgR: 0.91, PnL: 10980.60},
		"momentum":           {Trades: 62, WinRate: 51.6, AvgR: 0.44, PnL: 2978.50},
	},
}

var futuresStats = models.StatsRecord{
	TotalTrades:  212,
	WinRate:      54.7,
	ProfitFactor: 1.87,
	TotalPnL:     26540.00,
	AvgWin:       710.30,
	AvgLoss:      -352.90,
	MaxDrawdown:  -11.2,
	BestStreak:   7,
	WorstStreak:  -5,
	AvgRMultiple: 0.58,
	SharpeRatio:  1.41,
	SetupBreakdown: map[string]models.SetupMetrics{
		"breakout":       {Trades: 54, WinRate: 57.4, AvgR: 0.69, PnL: 9120.00},
		"pullback":       {Trades: 49, WinRate: 55.1, AvgR: 0.61, PnL: 7480.00},
		"range_fade":     {Trades: 61, WinRate: 52.5, AvgR: 0.47, PnL: 5240.00},
		"mean_reversion": {Trades: 48, WinRate: 52.1, AvgR: 0.49, PnL: 4700.00},
	},
}

// Stats returns the authored summary for a class.
func Stats(class refdata.AssetClass) models.StatsRecord {
	if class == refdata.ClassFutures {
		return futuresStats
	}
	return cryptoStats
}

// StatsAccurate is the "accurate" stats variant: the same record with
// the win rate and profit factor nudged so the two endpoints never
// answer byte-identically.
func StatsAccurate(rnd *randx.Source, class refdata.AssetClass) models.StatsRecord {
	s := Stats(class)
	s.WinRate = randx.Round(s.WinRate+rnd.Float(-1.5, 1.5), 1)
	s.ProfitFactor = randx.Round(s.ProfitFactor+rnd.Float(-0.15, 0.15), 2)
	return s
}
