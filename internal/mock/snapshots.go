package mock

import (
	"time"

	"dashmock/internal/models"
	"dashmock/internal/randx"
	"dashmock/internal/refdata"
)

// Lightly randomized status snippets. Each call re-rolls the jittered
// fields; structural fields stay fixed so the UI never sees a shape
// change.

// StatusSnapshot backs the status endpoint and the socket simulator's
// periodic status events.
func (d *Dispatcher) StatusSnapshot(class refdata.AssetClass) map[string]any {
	balance := 31500.0
	if class == refdata.ClassFutures {
		balance = 52000.0
	}
	balance = randx.Round(balance*d.rnd.Float(0.98, 1.03), 2)
	return map[string]any{
		"running":        true,
		"mode":           "live",
		"asset_class":    string(class),
		"balance":        balance,
		"available":      randx.Round(balance*d.rnd.Float(0.55, 0.8), 2),
		"regime":         randx.Choice(d.rnd, refdata.Regimes),
		"uptime_seconds": d.rnd.Int(3600, 86400*14),
		"cpu_percent":    randx.Round(d.rnd.Float(2, 18), 1),
		"memory_mb":      d.rnd.Int(180, 420),
		"guardian": map[string]any{
			"daily_loss_limit_pct": 5.0,
			"daily_loss_used_pct":  randx.Round(d.rnd.Float(0, 2.5), 2),
			"max_open_positions":   5,
			"drawdown_threshold":   -12.0,
			"drawdown_current":     randx.Round(d.rnd.Float(-4, 0), 2),
		},
		"updated_at": time.Now().UTC(),
	}
}

func (d *Dispatcher) monitorStatus() map[string]any {
	return map[string]any{
		"service":         "market-monitor",
		"healthy":         true,
		"watched_symbols": 142,
		"active_alerts":   d.rnd.Int(2, 9),
		"scan_interval_s": 30,
		"last_scan":       time.Now().UTC().Add(-time.Duration(d.rnd.Int(5, 120)) * time.Second),
	}
}

// altseasonSnapshot is the composite indicator: how much of the market
// is outperforming bitcoin over the lookback window.
func (d *Dispatcher) altseasonSnapshot() map[string]any {
	index := d.rnd.Int(20, 85)
	phase := "bitcoin_season"
	switch {
	case index >= 75:
		phase = "altseason"
	case index >= 50:
		phase = "alt_rotation"
	case index >= 35:
		phase = "neutral"
	}
	return map[string]any{
		"index":               index,
		"phase":               phase,
		"outperforming_count": d.rnd.Int(10, 42),
		"tracked_count":       50,
		"btc_dominance":       randx.Round(d.rnd.Float(48, 62), 1),
		"lookback_days":       90,
		"updated_at":          time.Now().UTC(),
	}
}

func (d *Dispatcher) coinScan() []map[string]any {
	out := make([]map[string]any, 0, len(refdata.CoinCatalog))
	for _, coin := range refdata.CoinCatalog {
		out = append(out, map[string]any{
			"symbol":         coin.Symbol,
			"name":           coin.Name,
			"sector":         coin.Sector,
			"change_24h_pct": randx.Round(d.rnd.Float(-9, 14), 2),
			"volume_rank":    d.rnd.Int(1, 120),
			"momentum_score": randx.Round(d.rnd.Float(10, 95), 1),
			"flagged":        d.rnd.Chance(0.2),
		})
	}
	return out
}

func (d *Dispatcher) harvestStatus() map[string]any {
	return map[string]any{
		"service":        "yield-harvester",
		"running":        true,
		"pools_tracked":  d.rnd.Int(6, 14),
		"pending_claims": d.rnd.Int(0, 3),
		"next_harvest":   time.Now().UTC().Add(time.Duration(d.rnd.Int(10, 360)) * time.Minute),
	}
}

func (d *Dispatcher) harvestStats() map[string]any {
	return map[string]any{
		"total_harvested":  randx.Round(d.rnd.Float(1200, 4800), 2),
		"apr_percent":      randx.Round(d.rnd.Float(4, 19), 2),
		"best_pool":        "ETH/USDC",
		"harvest_count":    d.rnd.Int(40, 160),
		"gas_spent":        randx.Round(d.rnd.Float(80, 420), 2),
		"last_harvest_pnl": randx.Round(d.rnd.Float(8, 95), 2),
	}
}

func (d *Dispatcher) servicesList() []map[string]any {
	names := []string{"executor", "scanner", "regime-classifier", "risk-guardian", "data-feed"}
	out := make([]map[string]any, 0, len(names))
	for _, n := range names {
		out = append(out, map[string]any{
			"name":    n,
			"status":  "running",
			"uptime":  d.rnd.Int(3600, 86400*7),
			"restart": 0,
		})
	}
	return out
}

func (d *Dispatcher) latencySnippet() map[string]any {
	return map[string]any{
		"exchange_ms": d.rnd.Int(8, 45),
		"feed_ms":     d.rnd.Int(2, 20),
		"internal_ms": d.rnd.Int(1, 6),
		"measured_at": time.Now().UTC(),
	}
}

func (d *Dispatcher) lastScan() map[string]any {
	return map[string]any{
		"scanned":    142,
		"candidates": d.rnd.Int(0, 6),
		"took_ms":    d.rnd.Int(120, 900),
		"at":         time.Now().UTC().Add(-time.Duration(d.rnd.Int(10, 300)) * time.Second),
	}
}

// regimeSnapshot is the composite on-chain regime indicator with a
// per-metric signal breakdown and the policy multipliers it implies.
func (d *Dispatcher) regimeSnapshot() map[string]any {
	metrics := []string{"exchange_netflow", "funding_rate", "open_interest", "stablecoin_supply", "long_short_ratio"}
	signals := make([]map[string]any, 0, len(metrics))
	bullish := 0
	for _, m := range metrics {
		signal := randx.Choice(d.rnd, []string{"bullish", "bearish", "neutral"})
		if signal == "bullish" {
			bullish++
		}
		signals = append(signals, map[string]any{
			"metric": m,
			"signal": signal,
			"value":  randx.Round(d.rnd.Float(-1, 1), 3),
			"weight": randx.Round(1.0/float64(len(metrics)), 2),
		})
	}
	composite := "neutral"
	sizeMult, confMult := 1.0, 1.0
	switch {
	case bullish >= 4:
		composite = "risk_on"
		sizeMult, confMult = 1.25, 1.1
	case bullish <= 1:
		composite = "risk_off"
		sizeMult, confMult = 0.5, 0.8
	}
	return map[string]any{
		"composite": composite,
		"signals":   signals,
		"policy_effect": map[string]any{
			"position_size_multiplier": sizeMult,
			"confidence_multiplier":    confMult,
		},
		"updated_at": time.Now().UTC(),
	}
}

// markPrices jitters each symbol's reference price a little.
func (d *Dispatcher) markPrices(class refdata.AssetClass) []models.MarkPrice {
	symbols := refdata.Symbols(class)
	out := make([]models.MarkPrice, 0, len(symbols))
	for _, sym := range symbols {
		ref := refdata.ReferencePrices[sym]
		out = append(out, models.MarkPrice{
			Symbol: sym,
			Price:  randx.Round(ref*d.rnd.Float(0.995, 1.005), 4),
		})
	}
	return out
}
