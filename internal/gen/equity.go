package gen

import (
	"fmt"
	"time"

	"dashmock/internal/models"
	"dashmock/internal/randx"
)

const (
	equityDays    = 60
	startingStake = 25000.0
)

// EquityCurve walks a daily account balance upward from the starting
// stake: small daily drift, occasional losing days.
func EquityCurve(rnd *randx.Source, days int) []models.EquityPoint {
	if days <= 0 || days > 365 {
		days = equityDays
	}
	now := time.Now().UTC().Truncate(24 * time.Hour)
	equity := startingStake
	out := make([]models.EquityPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		equity *= 1 + rnd.Float(-0.012, 0.022)
		out = append(out, models.EquityPoint{
			Time:   now.AddDate(0, 0, -i),
			Equity: randx.Round(equity, 2),
		})
	}
	return out
}

// EquityBySymbol builds a shorter per-symbol cumulative P&L curve for
// each requested symbol.
func EquityBySymbol(rnd *randx.Source, symbols []string) map[string][]models.EquityPoint {
	out := make(map[string][]models.EquityPoint, len(symbols))
	now := time.Now().UTC().Truncate(24 * time.Hour)
	for _, sym := range symbols {
		pnl := 0.0
		points := make([]models.EquityPoint, 0, 30)
		for i := 29; i >= 0; i-- {
			pnl += rnd.Float(-400, 650)
			points = append(points, models.EquityPoint{
				Time:   now.AddDate(0, 0, -i),
				Equity: randx.Round(pnl, 2),
			})
		}
		out[sym] = points
	}
	return out
}

// Comparison produces benchmark series next to the strategy curve.
func Comparison(rnd *randx.Source) []models.ComparisonSeries {
	strategy := EquityCurve(rnd, equityDays)
	benchmarks := []struct {
		name  string
		drift float64
		noise float64
	}{
		{"buy_hold_btc", 0.004, 0.028},
		{"sp500", 0.0006, 0.009},
	}
	out := []models.ComparisonSeries{{Name: "strategy", Points: strategy}}
	for _, b := range benchmarks {
		value := startingStake
		points := make([]models.EquityPoint, 0, len(strategy))
		for _, p := range strategy {
			value *= 1 + b.drift + rnd.Float(-b.noise, b.noise)
			points = append(points, models.EquityPoint{Time: p.Time, Equity: randx.Round(value, 2)})
		}
		out = append(out, models.ComparisonSeries{Name: b.name, Points: points})
	}
	return out
}

// Sessions breaks performance down by trading session and weekday.
func Sessions(rnd *randx.Source) map[string][]models.SessionRow {
	sessions := []string{"asia", "london", "new_york"}
	days := []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	bySession := make([]models.SessionRow, 0, len(sessions))
	for _, s := range sessions {
		bySession = append(bySession, sessionRow(rnd, s))
	}
	byDay := make([]models.SessionRow, 0, len(days))
	for _, d := range days {
		byDay = append(byDay, sessionRow(rnd, d))
	}
	return map[string][]models.SessionRow{
		"by_session": bySession,
		"by_weekday": byDay,
	}
}

func sessionRow(rnd *randx.Source, label string) models.SessionRow {
	return models.SessionRow{
		Label:   label,
		Trades:  rnd.Int(20, 90),
		WinRate: randx.Round(rnd.Float(45, 68), 1),
		PnL:     randx.Round(rnd.Float(-2500, 9500), 2),
	}
}

// CapitalEvents fabricates the deposit/withdrawal ledger plus the
// normalized return metrics the dashboard shows beside it.
func CapitalEvents(rnd *randx.Source) map[string]any {
	now := time.Now().UTC()
	events := []models.CapitalEvent{
		{ID: "dep-1", Kind: "deposit", Amount: startingStake, Time: now.AddDate(0, 0, -equityDays), Note: "initial funding"},
	}
	deposits := startingStake
	withdrawals := 0.0
	n := rnd.Int(2, 4)
	for i := 0; i < n; i++ {
		kind := "deposit"
		amount := randx.Round(rnd.Float(1000, 8000), 2)
		if rnd.Chance(0.4) {
			kind = "withdrawal"
			withdrawals += amount
		} else {
			deposits += amount
		}
		events = append(events, models.CapitalEvent{
			ID:     fmt.Sprintf("%s-%d", kind[:3], i+2),
			Kind:   kind,
			Amount: amount,
			Time:   now.AddDate(0, 0, -rnd.Int(1, equityDays-1)),
		})
	}
	netInvested := deposits - withdrawals
	balance := randx.Round(netInvested*rnd.Float(1.1, 1.6), 2)
	return map[string]any{
		"events":       events,
		"deposits":     randx.Round(deposits, 2),
		"withdrawals":  randx.Round(withdrawals, 2),
		"net_invested": randx.Round(netInvested, 2),
		"balance":      balance,
		"twr_percent":  randx.Round((balance/netInvested-1)*100, 2),
		"realized_roi": randx.Round(rnd.Float(8, 42), 2),
		"as_of":        now,
	}
}
