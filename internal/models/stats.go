package models

import "time"

// StatsRecord is the authored per-class summary; it is not derived
// from the generated ledger.
type StatsRecord struct {
	TotalTrades    int                     `json:"total_trades"`
	WinRate        float64                 `json:"win_rate"`
	ProfitFactor   float64                 `json:"profit_factor"`
	TotalPnL       float64                 `json:"total_pnl"`
	AvgWin         float64                 `json:"avg_win"`
	AvgLoss        float64                 `json:"avg_loss"`
	MaxDrawdown    float64                 `json:"max_drawdown"`
	BestStreak     int                     `json:"best_streak"`
	WorstStreak    int                     `json:"worst_streak"`
	AvgRMultiple   float64                 `json:"avg_r_multiple"`
	SharpeRatio    float64                 `json:"sharpe_ratio"`
	SetupBreakdown map[string]SetupMetrics `json:"setup_breakdown"`
}

type SetupMetrics struct {
	Trades  int     `json:"trades"`
	WinRate float64 `json:"win_rate"`
	AvgR    float64 `json:"avg_r"`
	PnL     float64 `json:"pnl"`
}

type EquityPoint struct {
	Time   time.Time `json:"time"`
	Equity float64   `json:"equity"`
}

type SessionRow struct {
	Label   string  `json:"label"`
	Trades  int     `json:"trades"`
	WinRate float64 `json:"win_rate"`
	PnL     float64 `json:"pnl"`
}

type ComparisonSeries struct {
	Name   string        `json:"name"`
	Points []EquityPoint `json:"points"`
}
