package gen

import (
	"dashmock/internal/models"
	"dashmock/internal/randx"
)

// maintenanceFactor drives the simplified liquidation model:
// liq = entry * (1 -/+ maintenanceFactor/leverage).
const maintenanceFactor = 0.9

// Positions projects the open subset of a ledger into position views.
// Pure: the same trades always yield the same positions.
func Positions(trades []models.TradeRecord) []models.Position {
	out := make([]models.Position, 0)
	for _, t := range trades {
		if t.Status != models.StatusOpen {
			continue
		}
		notional := randx.Round(t.Quantity*t.EntryPrice, 2)
		margin := randx.Round(notional/t.Leverage, 2)
		liqOffset := maintenanceFactor / t.Leverage
		liq := t.EntryPrice * (1 - liqOffset)
		if t.Side == "short" {
			liq = t.EntryPrice * (1 + liqOffset)
		}
		out = append(out, models.Position{
			Symbol:           t.Symbol,
			Side:             t.Side,
			EntryPrice:       t.EntryPrice,
			CurrentPrice:     t.CurrentPrice,
			Quantity:         t.Quantity,
			Leverage:         t.Leverage,
			Notional:         notional,
			Margin:           margin,
			LiquidationPrice: randx.Round(liq, 4),
			StopLoss:         t.StopLoss,
			TakeProfit:       t.TakeProfit,
			UnrealizedPnL:    t.PnL,
			PnLPercent:       t.PnLPercent,
			EntryTime:        t.EntryTime,
			Regime:           t.Regime,
			SetupType:        t.SetupType,
		})
	}
	return out
}
