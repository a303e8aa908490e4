// Package refdata holds the fixed catalogs the generators draw from:
// tradable symbols with reference prices, enum labels, and the message
// catalogs for the event feeds. Everything here is immutable for the
// lifetime of the process.
package refdata

// AssetClass selects one of the two disjoint trading contexts.
type AssetClass string

const (
	ClassCrypto  AssetClass = "crypto"
	ClassFutures AssetClass = "futures"
)

var CryptoSymbols = []string{
	"BTCUSDT", "ETHUSDT", "SOLUSDT", "BNBUSDT", "XRPUSDT",
	"ADAUSDT", "AVAXUSDT", "DOGEUSDT", "LINKUSDT", "DOTUSDT",
}

var FuturesSymbols = []string{
	"ES", "NQ", "CL", "GC", "YM", "RTY", "SI", "ZB",
}

// ReferencePrices anchor entry prices and candle walks per symbol.
var ReferencePrices = map[string]float64{
	"BTCUSDT":  97250.0,
	"ETHUSDT":  3420.0,
	"SOLUSDT":  188.5,
	"BNBUSDT":  642.0,
	"XRPUSDT":  2.35,
	"ADAUSDT":  0.92,
	"AVAXUSDT": 38.7,
	"DOGEUSDT": 0.31,
	"LINKUSDT": 21.4,
	"DOTUSDT":  7.15,

	"ES":  6030.0,
	"NQ":  21550.0,
	"CL":  71.8,
	"GC":  2705.0,
	"YM":  44650.0,
	"RTY": 2310.0,
	"SI":  31.2,
	"ZB":  118.4,
}

// Volatility returns the entry-price band for a symbol as a fraction of
// its reference price. Thin, cheap assets move more.
func Volatility(symbol string) float64 {
	ref := ReferencePrices[symbol]
	switch {
	case ref >= 10000:
		return 0.015
	case ref >= 100:
		return 0.03
	default:
		return 0.05
	}
}

// Symbols returns the catalog for a class. Unknown classes fall back to
// crypto, the primary context.
func Symbols(class AssetClass) []string {
	if class == ClassFutures {
		return FuturesSymbols
	}
	return CryptoSymbols
}
