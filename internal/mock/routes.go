package mock

import (
	"strings"

	"dashmock/internal/gen"
	"dashmock/internal/randx"
	"dashmock/internal/refdata"
)

type route struct {
	name   string
	match  func(req Request, ctx serviceContext) bool
	handle func(req Request, ctx serviceContext) Payload
}

// buildRoutes assembles the ordered table. Entries for the monitoring
// and harvest services come first so their generic-looking suffixes
// ("/status", "/stats") never fall through to the trading handlers;
// within the trading family the more specific paths precede the
// substring checks they overlap with.
func (d *Dispatcher) buildRoutes() []route {
	pathHas := func(s string) func(Request, serviceContext) bool {
		return func(req Request, _ serviceContext) bool {
			return strings.Contains(req.Path(), s)
		}
	}
	inCtx := func(want serviceContext, s string) func(Request, serviceContext) bool {
		return func(req Request, ctx serviceContext) bool {
			return ctx == want && strings.Contains(req.Path(), s)
		}
	}
	trading := func(s string) func(Request, serviceContext) bool {
		return func(req Request, ctx serviceContext) bool {
			return (ctx == ctxPrimary || ctx == ctxAlternate) && strings.Contains(req.Path(), s)
		}
	}

	return []route{
		{"monitor-alerts", inCtx(ctxMonitor, "/alerts"), func(req Request, _ serviceContext) Payload {
			return Ok(gen.Alerts(d.rnd, req.IntQuery("limit", 10)))
		}},
		{"monitor-errors", inCtx(ctxMonitor, "/errors"), func(req Request, _ serviceContext) Payload {
			return Ok(gen.Errors(d.rnd, req.IntQuery("limit", 10)))
		}},
		{"monitor-altseason", inCtx(ctxMonitor, "/altseason"), func(Request, serviceContext) Payload {
			return Ok(d.altseasonSnapshot())
		}},
		{"monitor-coins", inCtx(ctxMonitor, "/coins"), func(Request, serviceContext) Payload {
			return Ok(d.coinScan())
		}},
		{"monitor-status", inCtx(ctxMonitor, "/status"), func(Request, serviceContext) Payload {
			return Ok(d.monitorStatus())
		}},

		{"harvest-stats", inCtx(ctxHarvest, "/stats"), func(Request, serviceContext) Payload {
			return Ok(d.harvestStats())
		}},
		{"harvest-status", inCtx(ctxHarvest, "/status"), func(Request, serviceContext) Payload {
			return Ok(d.harvestStatus())
		}},

		{"stats-accurate", trading("/stats/accurate"), func(_ Request, ctx serviceContext) Payload {
			return Ok(gen.StatsAccurate(d.rnd, classOf(ctx)))
		}},
		{"stats", trading("/stats"), func(_ Request, ctx serviceContext) Payload {
			return Ok(gen.Stats(classOf(ctx)))
		}},
		{"trades", trading("/trades"), func(_ Request, ctx serviceContext) Payload {
			return Ok(d.Trades(classOf(ctx)))
		}},
		{"positions", trading("/positions"), func(_ Request, ctx serviceContext) Payload {
			return Ok(gen.Positions(d.Trades(classOf(ctx))))
		}},
		{"capital-events", trading("/capital-events"), func(Request, serviceContext) Payload {
			return Ok(gen.CapitalEvents(d.rnd))
		}},
		{"candles", trading("/candles/"), func(req Request, _ serviceContext) Payload {
			return Ok(d.candles.Get(candleSymbol(req.Path())))
		}},
		{"settings", pathHas("/settings"), func(Request, serviceContext) Payload {
			return Ok(defaultSettings())
		}},
		{"analytics-comparison", trading("/analytics/comparison"), func(Request, serviceContext) Payload {
			return Ok(gen.Comparison(d.rnd))
		}},
		{"analytics-equity-by-symbol", trading("/analytics/equity-by-symbol"), func(_ Request, ctx serviceContext) Payload {
			symbols := refdata.Symbols(classOf(ctx))
			return Ok(gen.EquityBySymbol(d.rnd, symbols[:5]))
		}},
		{"analytics-sessions", trading("/analytics/sessions"), func(Request, serviceContext) Payload {
			return Ok(gen.Sessions(d.rnd))
		}},
		{"prices", trading("/prices"), func(_ Request, ctx serviceContext) Payload {
			return Ok(d.markPrices(classOf(ctx)))
		}},
		{"services", trading("/services"), func(Request, serviceContext) Payload {
			return Ok(d.servicesList())
		}},
		{"latency", trading("/latency"), func(Request, serviceContext) Payload {
			return Ok(d.latencySnippet())
		}},
		{"last-scan", trading("/last-scan"), func(Request, serviceContext) Payload {
			return Ok(d.lastScan())
		}},
		{"drift-check", pathHas("/drift-check"), func(Request, serviceContext) Payload {
			return Ok(map[string]any{
				"drift_detected": false,
				"checked_models": 4,
				"max_deviation":  randx.Round(d.rnd.Float(0.001, 0.02), 4),
				"status":         "ok",
			})
		}},
		{"kill-switch", pathHas("/kill-switch"), func(Request, serviceContext) Payload {
			return Ok(map[string]any{"active": false, "armed": true, "triggered_at": nil})
		}},
		{"regime", trading("/regime"), func(Request, serviceContext) Payload {
			return Ok(d.regimeSnapshot())
		}},
		{"status", trading("/status"), func(_ Request, ctx serviceContext) Payload {
			return Ok(d.StatusSnapshot(classOf(ctx)))
		}},
	}
}

// candleSymbol pulls the path parameter after "/candles/".
func candleSymbol(path string) string {
	i := strings.Index(path, "/candles/")
	sym := strings.Trim(path[i+len("/candles/"):], "/")
	if j := strings.Index(sym, "/"); j >= 0 {
		sym = sym[:j]
	}
	if sym == "" {
		return refdata.CryptoSymbols[0]
	}
	return strings.ToUpper(sym)
}

func defaultSettings() map[string]any {
	return map[string]any{
		"theme":            "dark",
		"language":         "en",
		"refresh_interval": 30,
		"notifications":    true,
		"sound":            false,
	}
}
