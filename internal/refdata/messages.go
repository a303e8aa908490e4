package refdata

// CatalogMessage is one entry of a feed catalog. Level doubles as alert
// severity or log level depending on the consuming generator.
type CatalogMessage struct {
	Text     string
	Level    string
	Source   string
	Resolved bool
}

var AlertCatalog = []CatalogMessage{
	{Text: "BTC funding rate flipped negative on 3 exchanges", Level: "info", Source: "funding-watch"},
	{Text: "Unusual volume spike detected on SOLUSDT (4.2x average)", Level: "warning", Source: "volume-scanner"},
	{Text: "ETH broke above 20-day range high", Level: "info", Source: "breakout-scanner"},
	{Text: "Open interest on NQ futures at 30-day high", Level: "info", Source: "oi-monitor"},
	{Text: "Correlation between BTC and equities dropped below 0.2", Level: "warning", Source: "correlation-watch"},
	{Text: "Stablecoin inflows to exchanges accelerating", Level: "info", Source: "flow-monitor"},
	{Text: "Drawdown guardian threshold at 70% utilization", Level: "warning", Source: "risk-guardian", Resolved: true},
	{Text: "Altcoin breadth improved: 62% of tracked coins above 50-day MA", Level: "info", Source: "breadth-scanner"},
	{Text: "CL volatility regime shifted to high", Level: "warning", Source: "regime-monitor"},
	{Text: "Large bid wall appeared on ETHUSDT at round number", Level: "info", Source: "orderbook-watch", Resolved: true},
}

var ErrorCatalog = []CatalogMessage{
	{Text: "Rate limit hit on market data feed, backing off", Level: "warning", Source: "feed-client", Resolved: true},
	{Text: "Websocket reconnect after 3 missed heartbeats", Level: "warning", Source: "stream", Resolved: true},
	{Text: "Order book snapshot stale for 12s", Level: "error", Source: "orderbook-watch", Resolved: true},
	{Text: "Candle backfill gap detected for AVAXUSDT", Level: "error", Source: "history-sync", Resolved: false},
	{Text: "Slow response from analytics store (1.8s)", Level: "warning", Source: "analytics", Resolved: true},
	{Text: "Clock drift 240ms against exchange time", Level: "warning", Source: "timesync", Resolved: true},
}

var LogCatalog = []CatalogMessage{
	{Text: "Scanning 142 symbols for setups", Level: "info", Source: "scanner"},
	{Text: "Regime classifier updated: trending_up (confidence 0.81)", Level: "info", Source: "regime"},
	{Text: "Position sizing recalculated after equity update", Level: "debug", Source: "risk"},
	{Text: "No qualifying setups this cycle", Level: "info", Source: "scanner"},
	{Text: "Heartbeat ok, all services green", Level: "debug", Source: "health"},
	{Text: "Funding snapshot collected from 5 venues", Level: "info", Source: "funding-watch"},
	{Text: "Trailing stop adjusted on open BTCUSDT position", Level: "info", Source: "executor"},
	{Text: "Session stats rollup complete", Level: "debug", Source: "analytics"},
	{Text: "Drift check passed, model inputs within tolerance", Level: "info", Source: "guardian"},
}
