package refdata

var Sides = []string{"long", "short"}

var SetupTypes = []string{
	"breakout", "pullback", "mean_reversion", "trend_continuation",
	"range_fade", "momentum", "news_spike",
}

var Regimes = []string{"trending_up", "trending_down", "ranging", "volatile"}

var Rationales = []string{
	"Higher-timeframe trend aligned with entry trigger",
	"Liquidity sweep into demand zone, reclaim confirmed",
	"Breakout retest held as support",
	"Funding reset after extended move, fading exhaustion",
	"Volume expansion through prior session high",
	"Failed breakdown, trapped sellers fueling reversal",
	"Compression near value area, expecting expansion",
	"Momentum divergence at range extreme",
}

// CoinInfo backs the monitoring service's scanner list.
type CoinInfo struct {
	Symbol string
	Name   string
	Sector string
}

var CoinCatalog = []CoinInfo{
	{Symbol: "BTC", Name: "Bitcoin", Sector: "store-of-value"},
	{Symbol: "ETH", Name: "Ethereum", Sector: "smart-contract"},
	{Symbol: "SOL", Name: "Solana", Sector: "smart-contract"},
	{Symbol: "LINK", Name: "Chainlink", Sector: "oracle"},
	{Symbol: "AVAX", Name: "Avalanche", Sector: "smart-contract"},
	{Symbol: "ARB", Name: "Arbitrum", Sector: "layer-2"},
	{Symbol: "OP", Name: "Optimism", Sector: "layer-2"},
	{Symbol: "UNI", Name: "Uniswap", Sector: "defi"},
	{Symbol: "AAVE", Name: "Aave", Sector: "defi"},
	{Symbol: "DOGE", Name: "Dogecoin", Sector: "meme"},
	{Symbol: "PEPE", Name: "Pepe", Sector: "meme"},
	{Symbol: "RNDR", Name: "Render", Sector: "ai"},
	{Symbol: "TAO", Name: "Bittensor", Sector: "ai"},
	{Symbol: "XRP", Name: "Ripple", Sector: "payments"},
}
